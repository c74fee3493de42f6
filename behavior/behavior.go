// Package behavior composes animal behaviors and device features as open
// sequences of strategies.
package behavior

import (
	"context"
	"fmt"
	"io"
	"strings"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// CatalogueName identifies the tag dispatcher in errors and metrics.
const CatalogueName = "behavior"

// Subject is the entity a behavior is performed for.
type Subject struct {
	Name string
}

// Behavior performs one action for a subject and returns what it did.
type Behavior = policy.Strategy[Subject, string]

// Tag names a built-in behavior.
type Tag string

// Built-in tags.
const (
	TagBarking     Tag = "barking"
	TagMeowing     Tag = "meowing"
	TagTouchScreen Tag = "touchscreen"
	TagFoldable    Tag = "foldable"
)

var messages = map[Tag]string{
	TagBarking:     "Barking...",
	TagMeowing:     "Meowing...",
	TagTouchScreen: "Touchscreen feature",
	TagFoldable:    "Foldable feature",
}

// Tags returns the built-in tags in a stable order.
func Tags() []Tag {
	return []Tag{TagBarking, TagMeowing, TagTouchScreen, TagFoldable}
}

// ParseTag accepts a built-in tag name in any letter case.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := messages[t]; !ok {
		return "", errs.UnknownDiscriminator(CatalogueName, s)
	}
	return t, nil
}

type messageBehavior struct {
	tag Tag
	msg string
	out io.Writer
}

// Message returns a behavior that writes msg to out and returns it.
func Message(name, msg string, out io.Writer) Behavior {
	if out == nil {
		out = io.Discard
	}
	return messageBehavior{tag: Tag(name), msg: msg, out: out}
}

func (b messageBehavior) Name() string { return string(b.tag) }

func (b messageBehavior) Execute(_ context.Context, _ Subject) (string, error) {
	if _, err := fmt.Fprintln(b.out, b.msg); err != nil {
		return "", err
	}
	return b.msg, nil
}

// Barking writes "Barking...".
func Barking(out io.Writer) Behavior { return Message(string(TagBarking), messages[TagBarking], out) }

// Meowing writes "Meowing...".
func Meowing(out io.Writer) Behavior { return Message(string(TagMeowing), messages[TagMeowing], out) }

// TouchScreen writes "Touchscreen feature".
func TouchScreen(out io.Writer) Behavior {
	return Message(string(TagTouchScreen), messages[TagTouchScreen], out)
}

// Foldable writes "Foldable feature".
func Foldable(out io.Writer) Behavior {
	return Message(string(TagFoldable), messages[TagFoldable], out)
}

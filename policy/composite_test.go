package policy_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

type trace struct {
	calls []string
}

func (tr *trace) step(name string, err error) policy.Strategy[string, string] {
	return policy.Func(name, func(_ context.Context, in string) (string, error) {
		tr.calls = append(tr.calls, name)
		if err != nil {
			return "", err
		}
		return in + ":" + name, nil
	})
}

func TestCompositePerformAll(t *testing.T) {
	t.Run("runs in order", func(t *testing.T) {
		tr := &trace{}
		c, err := policy.NewComposite("pipeline", []policy.Strategy[string, string]{
			tr.step("a", nil), tr.step("b", nil), tr.step("c", nil),
		})
		require.NoError(t, err)

		outcomes := c.PerformAll(context.Background(), "x")
		assert.Equal(t, []string{"a", "b", "c"}, tr.calls)
		assert.Equal(t, []string{"x:a", "x:b", "x:c"}, policy.Values(outcomes))
		assert.NoError(t, policy.Errors(outcomes))
	})

	t.Run("error does not stop the rest", func(t *testing.T) {
		tr := &trace{}
		boom := stderrors.New("boom")
		c := policy.MustNewComposite("pipeline", []policy.Strategy[string, string]{
			tr.step("a", nil), tr.step("b", boom), tr.step("c", nil),
		})

		outcomes := c.PerformAll(context.Background(), "x")
		assert.Equal(t, []string{"a", "b", "c"}, tr.calls)
		require.Len(t, outcomes, 3)
		assert.Equal(t, "b", outcomes[1].Strategy)
		assert.Same(t, boom, outcomes[1].Result.UnwrapErr())
		assert.Equal(t, []string{"x:a", "x:c"}, policy.Values(outcomes))
		assert.ErrorIs(t, policy.Errors(outcomes), boom)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		tr := &trace{}
		panicking := policy.Func("p", func(context.Context, string) (string, error) { panic("nil map") })
		c := policy.MustNewComposite("pipeline", []policy.Strategy[string, string]{
			panicking, tr.step("after", nil),
		})

		outcomes := c.PerformAll(context.Background(), "x")
		assert.Equal(t, []string{"after"}, tr.calls)
		err := outcomes[0].Result.UnwrapErr()
		assert.True(t, errs.HasCode(err, errs.ErrCodeInternal))
		app, ok := errs.AsType[*errs.AppError](err)
		require.True(t, ok)
		assert.Equal(t, "nil map", app.Details["panic"])
	})

	t.Run("empty", func(t *testing.T) {
		c := policy.MustNewComposite[string, string]("empty", nil)
		assert.Empty(t, c.PerformAll(context.Background(), "x"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("nil strategy rejected", func(t *testing.T) {
		_, err := policy.NewComposite("pipeline", []policy.Strategy[string, string]{nil})
		assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidConfiguration))
	})

	t.Run("observer sees every run", func(t *testing.T) {
		tr := &trace{}
		rec := &recordingObserver{}
		c := policy.MustNewComposite("pipeline", []policy.Strategy[string, string]{
			tr.step("a", nil), tr.step("b", stderrors.New("x")),
		}, policy.WithObserver(rec))

		c.PerformAll(context.Background(), "x")
		require.Len(t, rec.executed, 2)
		assert.Equal(t, "pipeline", rec.executed[0].dispatcher)
		assert.NoError(t, rec.executed[0].err)
		assert.Error(t, rec.executed[1].err)
	})
}

func TestCompositeWithWithout(t *testing.T) {
	tr := &trace{}
	base := policy.MustNewComposite("pipeline", []policy.Strategy[string, string]{tr.step("a", nil)})

	extended, err := base.With(tr.step("b", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, base.Names())
	assert.Equal(t, []string{"a", "b"}, extended.Names())

	_, err = base.With(nil)
	assert.Error(t, err)

	trimmed := extended.Without("a")
	assert.Equal(t, []string{"b"}, trimmed.Names())
	assert.Equal(t, []string{"a", "b"}, extended.Names())
	assert.Equal(t, "pipeline", trimmed.Name())
}

func TestCompositeWithoutKeepsOtherResults(t *testing.T) {
	tr := &trace{}
	full := policy.MustNewComposite("pipeline", []policy.Strategy[string, string]{
		tr.step("a", nil), tr.step("b", nil),
	})
	trimmed := full.Without("a")

	before := full.PerformAll(context.Background(), "x")
	after := trimmed.PerformAll(context.Background(), "x")

	require.Len(t, before, 2)
	require.Len(t, after, 1)
	assert.Equal(t, "b", after[0].Strategy)
	assert.Equal(t, before[1], after[0])
	assert.Equal(t, []string{"x:a", "x:b"}, policy.Values(before))
	assert.Equal(t, []string{"x:b"}, policy.Values(after))
	for _, o := range after {
		assert.NotEqual(t, "a", o.Strategy)
	}
}

func TestCompositeInputNotShared(t *testing.T) {
	strategies := []policy.Strategy[string, string]{policy.Func("a", func(_ context.Context, s string) (string, error) { return s, nil })}
	c := policy.MustNewComposite("pipeline", strategies)
	strategies[0] = nil
	assert.Equal(t, 1, c.Len())
	assert.NotPanics(t, func() { c.PerformAll(context.Background(), "x") })
}

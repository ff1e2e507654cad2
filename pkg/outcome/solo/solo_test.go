package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	toLen := func(ctx context.Context, s string) outcome.Outcome[int, error] {
		if s == "" {
			return Fail[int](errors.New("empty"))
		}
		return Succeed[error](len(s))
	}

	assert.Equal(t, 3, Switch(ctx, Succeed[error]("abc"), toLen).Value())
	assert.EqualError(t, Switch(ctx, Succeed[error](""), toLen).Error(), "empty")

	earlier := errors.New("earlier")
	assert.Same(t, earlier, Switch(ctx, Fail[string](earlier), toLen).Error())
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Map(ctx, Succeed[string](4), func(ctx context.Context, n int) string { return strconv.Itoa(n) })
	assert.Equal(t, "4", res.Value())

	called := false
	failed := Map(ctx, Fail[int]("bad"), func(ctx context.Context, n int) string {
		called = true
		return ""
	})
	assert.False(t, called)
	assert.Equal(t, "bad", failed.Error())
}

func TestMapErrorAndRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mapped := MapError(ctx, Fail[int]("bad"), func(ctx context.Context, e string) error {
		return errors.New("wrapped " + e)
	})
	assert.EqualError(t, mapped.Error(), "wrapped bad")

	recovered := Recover(ctx, Fail[int]("bad"), func(ctx context.Context, e string) outcome.Outcome[int, error] {
		return Succeed[error](len(e))
	})
	assert.Equal(t, 3, recovered.Value())
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }

	assert.Equal(t, 12, Try(ctx, Succeed[error]("12"), parse).Value())
	assert.Error(t, Try(ctx, Succeed[error]("x"), parse).Error())

	earlier := errors.New("earlier")
	assert.Same(t, earlier, Try(ctx, Fail[string](earlier), parse).Error())
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mustBeSmall := func(ctx context.Context, n int) error {
		if n > 10 {
			return errors.New("too big")
		}
		return nil
	}

	in := Succeed[error](3)
	assert.True(t, FailOnError(ctx, in, mustBeSmall).Equal(in))
	assert.EqualError(t, FailOnError(ctx, Succeed[error](11), mustBeSmall).Error(), "too big")
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	record := func(ctx context.Context, r outcome.Outcome[int, string]) { seen = append(seen, r.Value()) }

	Tee(ctx, Succeed[string](1), record)
	Tee(ctx, Fail[int]("x"), record)
	TeeIf(ctx, Succeed[string](2), func(ctx context.Context, r outcome.Outcome[int, string]) bool { return false }, record)
	TeeIf(ctx, Succeed[string](3), func(ctx context.Context, r outcome.Outcome[int, string]) bool { return true }, record)

	assert.Equal(t, []int{1, 3}, seen)
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var oks, errs int
	onOk := func(ctx context.Context, r int) { oks++ }
	onErr := func(ctx context.Context, err string) { errs++ }

	DoubleTee(ctx, Succeed[string](1), onOk, onErr)
	DoubleTee(ctx, Fail[int]("x"), onOk, onErr)
	DoubleTee(ctx, Fail[int]("y"), onOk, onErr)

	assert.Equal(t, 1, oks)
	assert.Equal(t, 2, errs)
}

func TestDoubleTee_NilCallbacks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var errs int
	onErr := func(ctx context.Context, err string) { errs++ }

	assert.NotPanics(t, func() {
		DoubleTee(ctx, Succeed[string](1), nil, onErr)
		DoubleTee(ctx, Fail[int]("x"), func(context.Context, int) {}, nil)
		DoubleTee[int, string](ctx, Fail[int]("y"), nil, nil)
	})
	assert.Equal(t, 0, errs)

	out := DoubleTee(ctx, Fail[int]("z"), nil, onErr)
	assert.Equal(t, 1, errs)
	assert.Equal(t, "z", out.Error())
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var observed string
	res := DoubleMap(ctx, Fail[int]("bad"),
		func(ctx context.Context, n int) string { return strconv.Itoa(n) },
		func(ctx context.Context, err string) { observed = err })

	require.True(t, res.IsFailure())
	assert.Equal(t, "bad", res.Error())
	assert.Equal(t, "bad", observed)

	ok := DoubleMap(ctx, Succeed[string](5),
		func(ctx context.Context, n int) string { return strconv.Itoa(n) }, nil)
	assert.Equal(t, "5", ok.Value())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOk := func(ctx context.Context, v int) int { return v + 100 }
	onErr := func(ctx context.Context, err error) int { return -1 }

	assert.Equal(t, 103, Finally(ctx, Succeed[error](3), onOk, onErr))
	assert.Equal(t, -1, Finally(ctx, Fail[int](errors.New("x")), onOk, onErr))
}

func TestJoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inc := func(ctx context.Context, in outcome.Outcome[int, string]) outcome.Outcome[int, string] {
		return outcome.Transform(in, func(n int) int { return n + 1 })
	}
	stop := func(ctx context.Context, in outcome.Outcome[int, string]) outcome.Outcome[int, string] {
		return Fail[int]("stop")
	}
	same := func(ctx context.Context, current outcome.Outcome[int, string]) outcome.Outcome[int, string] {
		return current
	}

	assert.Equal(t, 3, Join(ctx, Succeed[string](0), true, same, inc, inc, inc).Value())
	assert.Equal(t, "stop", Join(ctx, Succeed[string](0), true, same, inc, stop, inc).Error())
	assert.Equal(t, 7, Join(ctx, Succeed[string](7), true, nil, inc).Value())
}

package builtins

import (
	"math/rand"

	"github.com/kavun-lang/kavun/internal/interp/runtime"
)

// fakeContext is a minimal Context for exercising built-ins that need
// one, without pulling in the executor package.
type fakeContext struct {
	r       *rand.Rand
	out     []string
	colored []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{r: rand.New(rand.NewSource(1))}
}

func (f *fakeContext) Rand() *rand.Rand                { return f.r }
func (f *fakeContext) Write(s string)                  { f.out = append(f.out, s) }
func (f *fakeContext) WriteLine(s string)              { f.out = append(f.out, s+"\n") }
func (f *fakeContext) WriteColored(s, color string)    { f.colored = append(f.colored, color+":"+s) }
func (f *fakeContext) StartAnimation(text string)      {}
func (f *fakeContext) StopAnimation()                  {}
func (f *fakeContext) ClearScreen()                    {}

func i(n int64) runtime.Value    { return &runtime.IntegerValue{Value: n} }
func s(v string) runtime.Value   { return &runtime.StringValue{Value: v} }
func fl(v float64) runtime.Value { return &runtime.FloatValue{Value: v} }

var _ Context = (*fakeContext)(nil)

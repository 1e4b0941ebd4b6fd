package catalog

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDemo struct {
	name     string
	category Category
}

func (d *fakeDemo) Name() string { return d.name }
func (d *fakeDemo) Category() Category { return d.category }
func (d *fakeDemo) Summary() string { return "summary of " + d.name }
func (d *fakeDemo) Run(_ context.Context, env *Env) error {
	_, err := fmt.Fprintln(env.Out, d.name+" ran")
	return err
}

func newDemo(name string, category Category) *fakeDemo {
	return &fakeDemo{name: name, category: category}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newDemo("observer", Behavioral)))

	demo, ok := r.Get("observer")
	require.True(t, ok)
	assert.Equal(t, Behavioral, demo.Category())
	assert.Equal(t, "summary of observer", demo.Summary())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RejectsEmptyAndDuplicate(t *testing.T) {
	r := NewRegistry()

	err := r.Register(newDemo("", Behavioral))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	require.NoError(t, r.Register(newDemo("proxy", Structural)))
	err = r.Register(newDemo("proxy", Structural))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	assert.Panics(t, func() { r.MustRegister(newDemo("proxy", Structural)) })
}

func TestRegistry_AllIsSortedByCategoryThenName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(newDemo("proxy", Structural))
	r.MustRegister(newDemo("builder", Creational))
	r.MustRegister(newDemo("visitor", Behavioral))
	r.MustRegister(newDemo("chain", Behavioral))

	var names []string
	for _, d := range r.All() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"chain", "visitor", "builder", "proxy"}, names)

	assert.Len(t, r.ByCategory(Behavioral), 2)
	assert.Empty(t, r.ByCategory(Category("other")))
}

func TestRegistry_LookupAndUnregister(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(newDemo("bridge", Structural))
	r.MustRegister(newDemo("adapter", Structural))

	demos, err := r.Lookup("bridge", "adapter")
	require.NoError(t, err)
	assert.Len(t, demos, 2)

	_, err = r.Lookup("bridge", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown demo: nope")

	r.Unregister("bridge")
	r.Unregister("never-registered")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(newDemo(fmt.Sprintf("demo-%d", i), Creational))
			_ = r.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}

func TestDemoRunWritesToEnv(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newDemo("facade", Structural).Run(context.Background(), NewEnv(&buf)))
	assert.Equal(t, "facade ran\n", buf.String())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("creational")
	require.NoError(t, err)
	assert.Equal(t, Creational, c)

	_, err = ParseCategory("functional")
	assert.Error(t, err)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), 0))
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, Sleep(ctx, 0), context.Canceled)
}

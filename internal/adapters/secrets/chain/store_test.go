package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string]string
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.values[key]
	if !ok {
		return "", errors.New("not found")
	}
	return value, nil
}

func (f *fakeStore) Put(_ context.Context, key string, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.values, key)
	return nil
}

func TestNewStoreRequiresBothBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, newFakeStore())
	require.Error(t, err)

	_, err = NewStore(newFakeStore(), nil)
	require.Error(t, err)
}

func TestGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := newFakeStore()
	primary.err = errors.New("pass unavailable")
	fallback := newFakeStore()
	fallback.values["paseo/walker/token"] = "bearer-abc"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "paseo/walker/token")
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", got)
}

func TestGetReportsBothFailures(t *testing.T) {
	t.Parallel()

	primary := newFakeStore()
	primary.err = errors.New("primary down")
	fallback := newFakeStore()
	notExist := errors.New("file missing")
	fallback.err = notExist

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "paseo/walker/token")
	require.Error(t, err)
	assert.ErrorIs(t, err, notExist)
	assert.ErrorContains(t, err, "primary get failed")
}

func TestPutPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := newFakeStore()
	fallback := newFakeStore()

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "k", "v"))
	assert.Equal(t, "v", primary.values["k"])
	assert.Empty(t, fallback.values)
}

func TestDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := newFakeStore()
	primary.values["k"] = "v"
	fallback := newFakeStore()
	fallback.values["k"] = "v"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Empty(t, primary.values)
	assert.Empty(t, fallback.values)
}

func TestCancellationSkipsFallback(t *testing.T) {
	t.Parallel()

	primary := newFakeStore()
	primary.err = context.Canceled
	fallback := newFakeStore()
	fallback.values["k"] = "v"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "k")
	require.ErrorIs(t, err, context.Canceled)
}

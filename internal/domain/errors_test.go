package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchErrorMatching(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewSearchError(FailureNetwork, cause)

	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, ErrDecode)
	require.Contains(t, err.Error(), "unreachable")

	wrapped := fmt.Errorf("searching: %w", NewSearchError(FailureDecode, errors.New("bad")))
	require.ErrorIs(t, wrapped, ErrDecode)

	se := AsSearchError(wrapped)
	require.Equal(t, FailureDecode, se.Kind)
}

func TestAsSearchErrorDefaultsToNetwork(t *testing.T) {
	se := AsSearchError(errors.New("boom"))
	require.Equal(t, FailureNetwork, se.Kind)
	require.ErrorIs(t, se, ErrNetwork)
}

func TestSearchErrorWithoutCause(t *testing.T) {
	err := NewSearchError(FailureMalformedURL, nil)
	require.ErrorIs(t, err, ErrMalformedURL)
	require.Equal(t, ErrMalformedURL.Error(), err.Error())
}

func TestLoadedStateNormalizesNil(t *testing.T) {
	s := LoadedState(Query{Text: "ab"}, 3, nil)
	require.True(t, s.IsLoaded())
	require.NotNil(t, s.Results)
	require.Empty(t, s.Results)
	require.Equal(t, uint64(3), s.Seq)
}

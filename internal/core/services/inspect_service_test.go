package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/icecofin/internal/adapters/repository"
	"github.com/kamal-hamza/icecofin/internal/core/ports/mocks"
)

func TestInspectService_LoadAfterFreeze(t *testing.T) {
	src := writeSource(t, "notes.txt", []byte("hello"))
	repo := repository.NewJSONDescriptorRepository()
	freeze := NewFreezeService(repo, mocks.NewMockFileTimes(fixedTime))

	resp, err := freeze.Execute(context.Background(), FreezeRequest{Source: src})
	require.NoError(t, err)

	svc := NewInspectService(repo, repo, "")
	d, err := svc.Load(context.Background(), resp.Destination)
	require.NoError(t, err)
	assert.Equal(t, resp.Descriptor, d)
}

func TestInspectService_LoadMissing(t *testing.T) {
	svc := NewInspectService(mocks.NewMockDescriptorRepository(), nil, "")

	_, err := svc.Load(context.Background(), "nowhere.icecofin")
	assert.Error(t, err)
}

func TestInspectService_Candidates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt.icecofin", "b.txt", "c.bin.frozen"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	repo := repository.NewJSONDescriptorRepository()

	paths, err := NewInspectService(repo, repo, "").Candidates(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt.icecofin")}, paths)

	paths, err = NewInspectService(repo, repo, ".frozen").Candidates(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "c.bin.frozen")}, paths)
}

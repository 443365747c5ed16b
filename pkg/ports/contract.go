package ports

import (
	"context"
	"testing"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPromptStoreContract runs a suite of tests to verify that a PromptStore implementation
// adheres to the defined interface contract.
func RunPromptStoreContract(t *testing.T, store PromptStore) {
	ctx := context.Background()
	promptID := "contract-test-prompt-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.Displayed("Billing", domain.KindMenu)

		err := store.Save(ctx, promptID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, promptID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state, loaded)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, promptID, domain.Displayed(domain.RootKey, domain.KindMenu)))
		require.NoError(t, store.Save(ctx, promptID, domain.Failed(domain.RootKey)))

		loaded, err := store.Load(ctx, promptID)
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseFailed, loaded.Phase)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+promptID)
		assert.ErrorIs(t, err, domain.ErrPromptNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, promptID, domain.NewState())
		require.NoError(t, err)

		err = store.Delete(ctx, promptID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, promptID)
		assert.ErrorIs(t, err, domain.ErrPromptNotFound, "Load after Delete should return ErrPromptNotFound")
	})
}

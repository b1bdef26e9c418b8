//go:build unit

package shared_test

import (
	"sync"
	"testing"

	"barberbook/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes the same key", func(t *testing.T) {
		km := shared.NewKeyedMutex()
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.Lock("Kenzo|2026-01-15")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()
		assert.Equal(t, 100, counter)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		km := shared.NewKeyedMutex()

		unlockA := km.Lock("Arka|2026-01-15")
		done := make(chan struct{})
		go func() {
			unlockB := km.Lock("Kenzo|2026-01-15")
			unlockB()
			close(done)
		}()
		<-done
		unlockA()
	})

	t.Run("key can be reacquired after unlock", func(t *testing.T) {
		km := shared.NewKeyedMutex()
		unlock := km.Lock("Kenzo|2026-01-15")
		unlock()
		unlock = km.Lock("Kenzo|2026-01-15")
		unlock()
	})
}

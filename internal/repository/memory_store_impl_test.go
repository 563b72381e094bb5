package repository

import (
	"fmt"
	"sync"
	"testing"

	"meditrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveFindDelete(t *testing.T) {
	store := NewDoctorRepository()
	doctor := &entity.Doctor{ID: "D1", Name: "Dr. Smith", Age: 45}

	store.Save(doctor.ID, doctor)

	found, ok := store.FindByID("D1")
	require.True(t, ok)
	assert.Same(t, doctor, found)

	assert.True(t, store.Delete("D1"))
	_, ok = store.FindByID("D1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count())
}

func TestMemoryStore_DeleteUnknownHasNoSideEffect(t *testing.T) {
	store := NewPatientRepository()
	store.Save("P1", &entity.Patient{ID: "P1"})

	assert.False(t, store.Delete("P404"))
	assert.Equal(t, 1, store.Count())
}

func TestMemoryStore_SaveUpserts(t *testing.T) {
	store := NewMemoryStore[string]()

	store.Save("k", "first")
	store.Save("k", "second")

	v, ok := store.FindByID("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, store.Count())
}

func TestMemoryStore_FindAllIsSnapshot(t *testing.T) {
	store := NewMemoryStore[int]()
	store.Save("a", 1)
	store.Save("b", 2)

	snapshot := store.FindAll()
	store.Save("c", 3)
	store.Delete("a")

	assert.ElementsMatch(t, []int{1, 2}, snapshot)
	assert.ElementsMatch(t, []int{2, 3}, store.FindAll())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore[int]()
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := fmt.Sprintf("%d-%d", w, i)
				store.Save(id, i)
				store.FindByID(id)
				store.FindAll()
				if i%2 == 0 {
					store.Delete(id)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 8*100, store.Count())
}

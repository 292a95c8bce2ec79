package mappers_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ScaleWeather/mappers"
	"github.com/ScaleWeather/mappers/projections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchTestCoords() [][2]float64 {
	coords := make([][2]float64, 0, 19*17)
	for lon := -171.0; lon <= 171.0; lon += 19.0 {
		for lat := -80.0; lat <= 80.0; lat += 10.0 {
			coords = append(coords, [2]float64{lon, lat})
		}
	}
	return coords
}

func TestProjectBatchMatchesSequential(t *testing.T) {
	lcc := newTestLCC(t)
	coords := batchTestCoords()

	got, err := mappers.ProjectBatch(lcc, coords)
	require.NoError(t, err)
	require.Len(t, got, len(coords))

	for i, pt := range coords {
		x, y, err := lcc.Project(pt[0], pt[1])
		require.NoError(t, err)
		assert.Equal(t, x, got[i][0], "element %d", i)
		assert.Equal(t, y, got[i][1], "element %d", i)
	}
}

func TestInverseProjectBatchMatchesSequential(t *testing.T) {
	lcc := newTestLCC(t)

	planar, err := mappers.ProjectBatch(lcc, batchTestCoords())
	require.NoError(t, err)

	got, err := mappers.InverseProjectBatch(lcc, planar)
	require.NoError(t, err)
	require.Len(t, got, len(planar))

	for i, pt := range planar {
		lon, lat, err := lcc.InverseProject(pt[0], pt[1])
		require.NoError(t, err)
		assert.Equal(t, lon, got[i][0], "element %d", i)
		assert.Equal(t, lat, got[i][1], "element %d", i)
	}
}

func TestConvertBatch(t *testing.T) {
	lcc := newTestLCC(t)
	merc, err := projections.NewMercator(0, 0, mappers.WGS84)
	require.NoError(t, err)
	pipe := mappers.NewConversionPipe(lcc, merc)

	planar, err := mappers.ProjectBatch(lcc, batchTestCoords())
	require.NoError(t, err)

	got, err := mappers.ConvertBatch(pipe, planar)
	require.NoError(t, err)
	require.Len(t, got, len(planar))

	for i, pt := range planar {
		x, y, err := pipe.Convert(pt[0], pt[1])
		require.NoError(t, err)
		assert.Equal(t, x, got[i][0], "element %d", i)
		assert.Equal(t, y, got[i][1], "element %d", i)
	}
}

func TestBatchAbortsOnFirstError(t *testing.T) {
	lcc := newTestLCC(t)
	coords := [][2]float64{{0, 10}, {0, 20}, {250, 30}, {0, 40}}

	got, err := mappers.ProjectBatch(lcc, coords)
	assert.Nil(t, got)

	var domErr *mappers.DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, "lon", domErr.Param)
	assert.Equal(t, 250.0, domErr.Value)
	// The wrapping names the offending element.
	assert.True(t, strings.HasPrefix(err.Error(), "element 2:"), err.Error())
}

func TestBatchEmptyInput(t *testing.T) {
	lcc := newTestLCC(t)

	got, err := mappers.ProjectBatch(lcc, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = mappers.ProjectBatch(lcc, [][2]float64{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjectionSharedAcrossGoroutines(t *testing.T) {
	lcc := newTestLCC(t)
	coords := batchTestCoords()

	want, err := mappers.ProjectBatch(lcc, coords)
	require.NoError(t, err)

	// One instance hammered from many goroutines must keep producing the
	// same values.
	var wg sync.WaitGroup
	errCh := make(chan error, 10)
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := mappers.ProjectBatch(lcc, coords)
			if err != nil {
				errCh <- err
				return
			}
			for i := range got {
				if got[i] != want[i] {
					errCh <- fmt.Errorf("element %d: got %v, want %v", i, got[i], want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent projection diverged: %v", err)
	}
}

// Package dataset provides loading and preparation helpers for training
// data: CSV parsing, min-max normalization, train/test splitting, and a
// synthetic blob generator for demos and tests.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a collection of samples and integer class labels. X has one
// sample per row; Labels[i] is the class of row i.
type Dataset struct {
	X      *mat.Dense
	Labels []int
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	if d.X == nil {
		return 0
	}
	r, _ := d.X.Dims()
	return r
}

// LoadCSV loads a dataset from a CSV file. labelCol is the index of the
// column holding the integer class label; all other columns are parsed as
// float features. hasHeader skips the first line.
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[startRow])
	if labelCol < 0 || labelCol >= numCols {
		return nil, fmt.Errorf("label column %d out of range for %d columns", labelCol, numCols)
	}

	numSamples := len(records) - startRow
	numFeatures := numCols - 1
	x := mat.NewDense(numSamples, numFeatures, nil)
	labels := make([]int, numSamples)

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		row := i - startRow
		feature := 0
		for j, valStr := range record {
			if j == labelCol {
				label, err := strconv.Atoi(valStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse label at row %d: %w", i, err)
				}
				labels[row] = label
				continue
			}
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			x.Set(row, feature, val)
			feature++
		}
	}

	return &Dataset{X: x, Labels: labels}, nil
}

// Normalize rescales every feature to [0, 1] with min-max normalization.
// Constant features become 0.
func (d *Dataset) Normalize() {
	rows, cols := d.X.Dims()
	if rows == 0 {
		return
	}

	for j := 0; j < cols; j++ {
		min, max := d.X.At(0, j), d.X.At(0, j)
		for i := 1; i < rows; i++ {
			v := d.X.At(i, j)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		span := max - min
		for i := 0; i < rows; i++ {
			if span == 0 {
				d.X.Set(i, j, 0)
				continue
			}
			d.X.Set(i, j, (d.X.At(i, j)-min)/span)
		}
	}
}

// Shuffle applies one random permutation jointly to the samples and labels.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rows, cols := d.X.Dims()
	perm := rng.Perm(rows)

	x := mat.NewDense(rows, cols, nil)
	labels := make([]int, rows)
	for i, j := range perm {
		x.SetRow(i, d.X.RawRowView(j))
		labels[i] = d.Labels[j]
	}
	d.X = x
	d.Labels = labels
}

// Split divides the dataset into two at the given ratio (0.0 to 1.0),
// returning (train, test). Rows are not copied; the halves view the
// original data.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	rows, cols := d.X.Dims()
	idx := int(float64(rows) * ratio)
	if idx <= 0 {
		return &Dataset{}, d
	}
	if idx >= rows {
		return d, &Dataset{}
	}

	train := &Dataset{
		X:      d.X.Slice(0, idx, 0, cols).(*mat.Dense),
		Labels: d.Labels[:idx],
	}
	test := &Dataset{
		X:      d.X.Slice(idx, rows, 0, cols).(*mat.Dense),
		Labels: d.Labels[idx:],
	}
	return train, test
}

// Blobs generates perClass samples around each center, perturbed by uniform
// noise in [-noise, noise] per feature. Class i's samples carry label i.
func Blobs(perClass int, centers [][]float64, noise float64, rng *rand.Rand) *Dataset {
	nClasses := len(centers)
	nFeatures := len(centers[0])
	rows := perClass * nClasses

	x := mat.NewDense(rows, nFeatures, nil)
	labels := make([]int, rows)
	for c, center := range centers {
		for s := 0; s < perClass; s++ {
			row := c*perClass + s
			for j, v := range center {
				x.Set(row, j, v+(rng.Float64()*2-1)*noise)
			}
			labels[row] = c
		}
	}

	return &Dataset{X: x, Labels: labels}
}

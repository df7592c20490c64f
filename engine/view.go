package engine

import "project-explorer/dataset"

// View is an ordered, read-only subset of a dataset. It holds indices into
// the dataset's record slice, so filtering never copies or mutates data.
type View struct {
	ds      *dataset.Dataset
	indices []int
}

// NewView wraps the whole dataset as a view.
func NewView(ds *dataset.Dataset) View {
	indices := make([]int, ds.Len())
	for i := range indices {
		indices[i] = i
	}
	return View{ds: ds, indices: indices}
}

func (v View) Len() int { return len(v.indices) }

// At returns the i-th record of the view, in original dataset order.
func (v View) At(i int) dataset.Record {
	return v.ds.Records[v.indices[i]]
}

// Records copies the view's records into a fresh slice.
func (v View) Records() []dataset.Record {
	out := make([]dataset.Record, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.ds.Records[idx]
	}
	return out
}

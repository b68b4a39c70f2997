package scad

// Dim is the dimension of an object, either D2 or D3.
type Dim interface {
	D2 | D3
	Dims() int
}

// D2 tags planar objects.
type D2 struct{}

// D3 tags solid objects.
type D3 struct{}

func (D2) Dims() int { return 2 }
func (D3) Dims() int { return 3 }

func dimsOf[D Dim]() int {
	var d D
	return d.Dims()
}

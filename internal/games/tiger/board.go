package tiger

import (
	"errors"
	"fmt"
)

// Node addresses a point on the board by row and column.
// Row 0 is the apex; columns count from the left of each row.
type Node struct {
	Row, Col int
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.Row, n.Col)
}

// Board is the triangular Tiger board. X holds each node's horizontal
// position and Y each row's vertical position, both in [0,1].
type Board struct {
	Shape []int
	X     [][]float64
	Y     []float64
}

// BuildBoard grows a board downwards from two seed rows. Every further row
// projects the row above it away from the apex at apexX, dropping
// restrictions[i]/2 nodes at each end first.
func BuildBoard(rowY []float64, seed [2][]float64, restrictions []int) (*Board, error) {
	if len(rowY) != len(seed)+len(restrictions) {
		return nil, errors.New("tiger: row count does not match seed rows plus restrictions")
	}
	if len(seed[0]) != 1 {
		return nil, errors.New("tiger: first seed row must be the single apex node")
	}
	total := 0
	for _, r := range restrictions {
		if r%2 != 0 {
			return nil, fmt.Errorf("tiger: restriction %d is odd", r)
		}
		total += r
	}
	if total >= len(seed[1]) {
		return nil, errors.New("tiger: restrictions remove the whole board")
	}

	apexX := seed[0][0]
	xs := [][]float64{seed[0], seed[1]}
	for _, r := range restrictions {
		layer := len(xs)
		prev := xs[layer-1]
		half := r / 2
		scale := (rowY[layer] - rowY[0]) / (rowY[layer-1] - rowY[0])

		row := make([]float64, 0, len(prev)-r)
		for _, x := range prev[half : len(prev)-half] {
			row = append(row, apexX+(x-apexX)*scale)
		}
		xs = append(xs, row)
	}

	shape := make([]int, len(xs))
	for i, row := range xs {
		shape[i] = len(row)
	}
	return &Board{Shape: shape, X: xs, Y: rowY}, nil
}

// DefaultBoard returns the classic board with rows of 1, 6, 6 and 4 nodes.
func DefaultBoard() *Board {
	b, err := BuildBoard(
		[]float64{0.2, 0.5, 0.7, 0.9},
		[2][]float64{{0.5}, {0.25, 0.35, 0.45, 0.55, 0.65, 0.75}},
		[]int{0, 2},
	)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return len(b.Shape) }

// Contains reports whether n is a node of the board.
func (b *Board) Contains(n Node) bool {
	return n.Row >= 0 && n.Row < len(b.Shape) && n.Col >= 0 && n.Col < b.Shape[n.Row]
}

// Nodes returns every node, row by row.
func (b *Board) Nodes() []Node {
	var out []Node
	for r, w := range b.Shape {
		for c := 0; c < w; c++ {
			out = append(out, Node{Row: r, Col: c})
		}
	}
	return out
}

// Links returns the drawn connections between nodes: each inner row's
// horizontal span, the aligned node pairs between consecutive rows, and the
// spokes from the apex.
func (b *Board) Links() [][2]Node {
	var links [][2]Node
	last := len(b.Shape) - 1
	for r := 1; r < last; r++ {
		for c := 0; c+1 < b.Shape[r]; c++ {
			links = append(links, [2]Node{{r, c}, {r, c + 1}})
		}
		offset := (b.Shape[r] - b.Shape[r+1]) / 2
		for c := 0; c < b.Shape[r+1]; c++ {
			links = append(links, [2]Node{{r, c + offset}, {r + 1, c}})
		}
	}
	if len(b.Shape) > 1 {
		offset := (b.Shape[1] - b.Shape[last]) / 2
		for c := offset; c < b.Shape[1]-offset; c++ {
			links = append(links, [2]Node{{0, 0}, {1, c}})
		}
	}
	return links
}

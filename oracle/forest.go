package oracle

import (
	"encoding/json"
	"fmt"
	"os"
)

// Forest is a vote-counting tree ensemble deserialized from a JSON
// artifact. All state is immutable after load, so one Forest serves
// concurrent requests.
type Forest struct {
	classes   []int
	nFeatures int
	trees     []tree
}

type forestFile struct {
	Classes   []int  `json:"classes"`
	NFeatures int    `json:"n_features"`
	Trees     []tree `json:"trees"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// node is either an interior split (Feature, Threshold, Left, Right) or,
// when Leaf is set, a leaf carrying an index into the class list.
type node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Class     int     `json:"class,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

// LoadForest reads and validates a forest artifact from disk.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return ParseForest(data)
}

// ParseForest decodes a forest artifact and rejects structurally broken
// ones (dangling node references, out-of-range feature or class indices)
// so evaluation never has to bounds-check.
func ParseForest(data []byte) (*Forest, error) {
	var f forestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(f.Classes) == 0 {
		return nil, fmt.Errorf("model declares no classes")
	}
	if f.NFeatures <= 0 {
		return nil, fmt.Errorf("model declares no features")
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model holds no trees")
	}
	for ti, tr := range f.Trees {
		if len(tr.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range tr.Nodes {
			if n.Leaf {
				if n.Class < 0 || n.Class >= len(f.Classes) {
					return nil, fmt.Errorf("tree %d node %d: class index %d out of range", ti, ni, n.Class)
				}
				continue
			}
			if n.Feature < 0 || n.Feature >= f.NFeatures {
				return nil, fmt.Errorf("tree %d node %d: feature %d out of range", ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(tr.Nodes) || n.Right < 0 || n.Right >= len(tr.Nodes) {
				return nil, fmt.Errorf("tree %d node %d: child out of range", ti, ni)
			}
		}
	}
	return &Forest{classes: f.Classes, nFeatures: f.NFeatures, trees: f.Trees}, nil
}

// NumFeatures returns the input width the forest was trained on.
func (f *Forest) NumFeatures() int { return f.nFeatures }

// Classes returns the class labels in vote order.
func (f *Forest) Classes() []int {
	out := make([]int, len(f.classes))
	copy(out, f.classes)
	return out
}

// Predict returns the majority-vote class. Ties go to the lowest class
// index, matching how the training pipeline broke them.
func (f *Forest) Predict(x []float64) (int, error) {
	votes, err := f.votes(x)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return f.classes[best], nil
}

// Proba returns each class's share of tree votes.
func (f *Forest) Proba(x []float64) ([]float64, error) {
	votes, err := f.votes(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(votes))
	for i, v := range votes {
		out[i] = float64(v) / float64(len(f.trees))
	}
	return out, nil
}

func (f *Forest) votes(x []float64) ([]int, error) {
	if len(x) != f.nFeatures {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d", len(x), f.nFeatures)
	}
	votes := make([]int, len(f.classes))
	for ti := range f.trees {
		ci, err := f.trees[ti].walk(x)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", ti, err)
		}
		votes[ci]++
	}
	return votes, nil
}

// walk descends from the root to a leaf. The step bound catches node
// cycles that the structural validation cannot rule out.
func (t tree) walk(x []float64) (int, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[idx]
		if n.Leaf {
			return n.Class, nil
		}
		if x[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("no leaf reached")
}

package spell

import "github.com/Kamal578/CSCI-6515-Project1/confusion"

// Sample is one evaluation item: the intended word and its corrupted form.
type Sample struct {
	Correct   string
	Corrupted string
}

// Accuracy reports how often the intended word appears in the ranked
// corrections, as a fraction of evaluated samples.
type Accuracy struct {
	Total int     `json:"total"`
	Top1  float64 `json:"top1"`
	TopK  float64 `json:"topk"`
}

// Evaluate corrects every corrupted sample against vocab and scores how
// often the intended word ranks first (top-1) or anywhere in the k returned
// candidates (top-k).
func Evaluate(samples []Sample, vocab []string, m *confusion.Matrix, k int) (Accuracy, error) {
	var acc Accuracy
	var top1, topk int

	for _, s := range samples {
		out, err := Correct(s.Corrupted, vocab, m, k)
		if err != nil {
			return Accuracy{}, err
		}
		acc.Total++
		for rank, c := range out {
			if c.Word != s.Correct {
				continue
			}
			if rank == 0 {
				top1++
			}
			topk++
			break
		}
	}

	if acc.Total > 0 {
		acc.Top1 = float64(top1) / float64(acc.Total)
		acc.TopK = float64(topk) / float64(acc.Total)
	}
	return acc, nil
}

package model

const historySize = 5

// History remembers hashes of recent generations to detect static or cycling boards
type History struct {
	hashes  []string
	current string
}

// Observe records g as the current generation
func (h *History) Observe(g *Grid) {
	if h.current != "" {
		h.hashes = append(h.hashes, h.current)
		if len(h.hashes) > historySize {
			h.hashes = h.hashes[1:]
		}
	}
	h.current = g.Hash()
}

// IsStagnant reports whether the current generation repeats one of the
// previous three, which catches still lifes and oscillators of period up to 3
func (h *History) IsStagnant() bool {
	if h.current == "" {
		return false
	}
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == h.current {
			return true
		}
	}
	return false
}

// Clear forgets all observed generations
func (h *History) Clear() {
	h.hashes = nil
	h.current = ""
}

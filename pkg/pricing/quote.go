package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"
)

// Quote couples a validated selection with its breakdown. The fingerprint
// is the SHA-256 of the JCS-canonicalized selection and breakdown, so
// equal inputs always yield equal fingerprints regardless of quote ID or
// creation time.
type Quote struct {
	ID          string    `json:"id" yaml:"id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Selection   Selection `json:"selection" yaml:"selection"`
	Breakdown   Breakdown `json:"breakdown" yaml:"breakdown"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
}

// Quote validates the selection and assembles a quote. Validation and
// calculation run on the same catalog snapshot.
func (e *Engine) Quote(sel Selection) (Quote, error) {
	view := e.catalog.Snapshot()
	if err := validateSelection(view, sel); err != nil {
		return Quote{}, err
	}
	bd, err := totalCost(view, sel)
	if err != nil {
		return Quote{}, err
	}
	fp, err := fingerprint(sel, bd)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Selection:   sel,
		Breakdown:   bd,
		Fingerprint: fp,
	}, nil
}

func fingerprint(sel Selection, bd Breakdown) (string, error) {
	payload := struct {
		Selection Selection `json:"selection"`
		Breakdown Breakdown `json:"breakdown"`
	}{sel, bd}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

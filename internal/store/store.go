package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

// Save persists the normalized records as a pretty-printed JSON array
// with a trailing newline. An empty run writes [] rather than null so
// downstream consumers always see an array.
func Save(records []provider.Record, path string) error {
	if records == nil {
		records = []provider.Record{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

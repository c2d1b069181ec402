// Package profile persists the founder profile as a JSON save file with
// a keyed checksum. The checksum catches accidental corruption (a
// truncated write, a hand edit gone wrong); it is not an authentication
// mechanism.
package profile

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is where the save lives unless --save points elsewhere.
const DefaultPath = "hustle_save.json"

// integrityKey is the static checksum key. Changing it invalidates
// every save in the wild.
var integrityKey = []byte("hustle-trail-2026-integrity")

// Data is the saved founder profile plus aggregate counters.
type Data struct {
	CompanyName  string `json:"company_name"`
	Problem      string `json:"problem"`
	Solution     string `json:"solution"`
	WarmIntro    bool   `json:"warm_intro"`
	EliteCollege bool   `json:"elite_college"`
	HighScore    int    `json:"high_score"`
	GamesPlayed  int    `json:"games_played"`
}

// Empty reports whether no profile has been saved yet.
func (d Data) Empty() bool {
	return d.CompanyName == ""
}

// Bump folds a finished run's score into the aggregate counters.
func (d *Data) Bump(score int) {
	d.GamesPlayed++
	if score > d.HighScore {
		d.HighScore = score
	}
}

// fileRecord is the on-disk shape: the profile fields plus the checksum.
type fileRecord struct {
	Data
	Hash string `json:"_hash"`
}

// checksum returns the first 16 hex characters of an HMAC-SHA256 over
// the profile's canonical JSON. Marshaling a map sorts the keys, so
// field order in the file never matters.
func checksum(d Data) string {
	canonical, _ := json.Marshal(map[string]any{
		"company_name":  d.CompanyName,
		"problem":       d.Problem,
		"solution":      d.Solution,
		"warm_intro":    d.WarmIntro,
		"elite_college": d.EliteCollege,
		"high_score":    d.HighScore,
		"games_played":  d.GamesPlayed,
	})
	mac := hmac.New(sha256.New, integrityKey)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil))[:16]
}

// Load reads the save at path (DefaultPath when empty). A missing file
// is a fresh start, not an error. A corrupt or tampered file comes back
// as zero Data along with the reason, so callers can log it and move on.
func Load(path string) (Data, error) {
	if path == "" {
		path = DefaultPath
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Data{}, nil
	}
	if err != nil {
		return Data{}, fmt.Errorf("profile: cannot read save: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Data{}, fmt.Errorf("profile: save file corrupted: %w", err)
	}
	if !hmac.Equal([]byte(rec.Hash), []byte(checksum(rec.Data))) {
		return Data{}, errors.New("profile: save checksum mismatch, starting fresh")
	}
	return rec.Data, nil
}

// Save writes the profile with its checksum.
func Save(path string, d Data) error {
	if path == "" {
		path = DefaultPath
	}
	raw, err := json.MarshalIndent(fileRecord{Data: d, Hash: checksum(d)}, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: cannot encode save: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("profile: cannot write save: %w", err)
	}
	return nil
}

// Reset deletes the save file. A missing file already counts as reset.
func Reset(path string) error {
	if path == "" {
		path = DefaultPath
	}
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("profile: cannot reset save: %w", err)
	}
	return nil
}

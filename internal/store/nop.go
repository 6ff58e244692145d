package store

import "time"

// NopStore is used for dry runs. It never records anything, so every page
// looks unsubmitted.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) HasSubmitted(string) (bool, error) { return false, nil }
func (s *NopStore) MarkSubmitted(string) error        { return nil }
func (s *NopStore) Cleanup(time.Duration) error       { return nil }
func (s *NopStore) IsEmpty() (bool, error)            { return false, nil }

package support

import (
	"fmt"
	"time"
)

// Problem is a support ticket raised by a user. Purged on account deletion.
type Problem struct {
	ID           int64
	Title        string
	Description  string
	CreationDate time.Time
	IsSolved     bool
	RequesterID  string
}

func (p Problem) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Description == "" {
		return fmt.Errorf("description is required")
	}
	if p.RequesterID == "" {
		return fmt.Errorf("requester id is required")
	}
	return nil
}

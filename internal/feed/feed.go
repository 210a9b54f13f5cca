// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package feed derives the rendered note list from the raw server list and
// the current view controls: a free-text filter and a sort direction. The
// projection is a pure function; it never mutates its input and carries no
// state of its own.
package feed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noted-app/noted/models"
)

// SortDirection orders the feed by creation time.
type SortDirection int

const (
	// Latest shows the newest notes first. This is the default.
	Latest SortDirection = iota
	// Oldest shows the oldest notes first.
	Oldest
)

// String returns the UI label of the direction.
func (d SortDirection) String() string {
	if d == Oldest {
		return "Oldest"
	}
	return "Latest"
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Latest {
		return Oldest
	}
	return Latest
}

// Entry is one render-ready feed row: the note plus its relative-age label.
type Entry struct {
	models.Note
	Age string
}

// Project returns the exact ordered subset of notes to render. The full list
// is stable-sorted by creation time (ties keep server order), then filtered,
// then each kept note gets a relative-age label computed against now.
func Project(notes []models.Note, filter string, dir SortDirection, now time.Time) []Entry {
	sorted := make([]models.Note, len(notes))
	copy(sorted, notes)

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Oldest {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	entries := make([]Entry, 0, len(sorted))
	for _, n := range sorted {
		if filter != "" {
			if strings.Contains(strings.ToLower(n.Data), strings.ToLower(filter)) {
				entries = append(entries, Entry{Note: n, Age: TimeSince(n.Date, now)})
			}
			continue
		}

		entries = append(entries, Entry{Note: n, Age: TimeSince(n.Date, now)})
	}

	return entries
}

// TimeSince formats the elapsed time between createdAt and now in the
// coarsest applicable unit, largest first: weeks, days, hours, minutes,
// seconds. Exactly one unit is shown ("1w", never "1w 2d").
func TimeSince(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)

	seconds := int(elapsed.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	weeks := days / 7

	switch {
	case weeks > 0:
		return fmt.Sprintf("%dw", weeks)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  []byte
	IsAdmin   bool
	CreatedAt time.Time
}

// Identity is a User without credentials. It is what the access gate puts on
// the request.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
	IsAdmin  bool
}

func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// MovieAction is the single source of truth for a user's relation to a movie.
// Liked, watched and watchlist lists are derived from these records.
type MovieAction struct {
	UserID      uuid.UUID
	MovieID     uuid.UUID
	Liked       bool
	Watched     bool
	InWatchlist bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// When each flag was last turned on. Nil while the flag is off.
	LikedAt       *time.Time
	WatchedAt     *time.Time
	WatchlistedAt *time.Time
}

func NewMovieAction(userID, movieID uuid.UUID) MovieAction {
	return MovieAction{
		UserID:  userID,
		MovieID: movieID,
	}
}

// ActionPatch is a partial update of a MovieAction. A nil field is "not
// supplied" and keeps the current value, false is an explicit false.
type ActionPatch struct {
	Liked       *bool
	Watched     *bool
	InWatchlist *bool
}

func (p ActionPatch) ApplyTo(a MovieAction) MovieAction {
	if p.Liked != nil {
		a.Liked = *p.Liked
	}
	if p.Watched != nil {
		a.Watched = *p.Watched
	}
	if p.InWatchlist != nil {
		a.InWatchlist = *p.InWatchlist
	}
	return a
}

type MovieLists struct {
	Liked     []uuid.UUID
	Watched   []uuid.UUID
	Watchlist []uuid.UUID
}

type listEntry struct {
	movieID uuid.UUID
	at      time.Time
}

func entryAt(a MovieAction, stamp *time.Time) listEntry {
	if stamp == nil {
		return listEntry{movieID: a.MovieID, at: a.CreatedAt}
	}
	return listEntry{movieID: a.MovieID, at: *stamp}
}

func sortedIDs(entries []listEntry) []uuid.UUID {
	slices.SortStableFunc(entries, func(x, y listEntry) int {
		return x.at.Compare(y.at)
	})
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.movieID
	}
	return ids
}

// ListsFromActions orders each list by the time its flag was set. A record
// without a stamp falls back to CreatedAt, ties keep the order of actions.
func ListsFromActions(actions []MovieAction) MovieLists {
	var liked, watched, watchlist []listEntry
	for _, a := range actions {
		if a.Liked {
			liked = append(liked, entryAt(a, a.LikedAt))
		}
		if a.Watched {
			watched = append(watched, entryAt(a, a.WatchedAt))
		}
		if a.InWatchlist {
			watchlist = append(watchlist, entryAt(a, a.WatchlistedAt))
		}
	}
	return MovieLists{
		Liked:     sortedIDs(liked),
		Watched:   sortedIDs(watched),
		Watchlist: sortedIDs(watchlist),
	}
}

// MovieSummaryLists is MovieLists with the movies populated.
type MovieSummaryLists struct {
	Liked     []MovieSummary
	Watched   []MovieSummary
	Watchlist []MovieSummary
}

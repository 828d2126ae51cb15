// Package service orchestrates syncing from the Hevy and Strava APIs into
// the local store and assembles the analysis views the TUI renders.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fitdash/internal/hevy"
	"fitdash/internal/store"
	"fitdash/internal/strava"
)

// SyncService orchestrates syncing workouts and runs into the store
type SyncService struct {
	hevyClient   *hevy.Client
	stravaClient *strava.Client
	store        *store.DB
}

// NewSyncService creates a new sync service. Either client may be nil, in
// which case its phase is skipped.
func NewSyncService(hevyClient *hevy.Client, stravaClient *strava.Client, db *store.DB) *SyncService {
	return &SyncService{
		hevyClient:   hevyClient,
		stravaClient: stravaClient,
		store:        db,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "workouts", "activities", "splits"
	Total     int
	Completed int
	Current   string
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	WorkoutsFetched  int
	WorkoutsStored   int
	ActivitiesStored int
	SplitsFetched    int
	Errors           []error
}

// SyncAll performs a full sync: Hevy workouts, then Strava runs, then
// per-mile splits for runs that lack them
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	if s.hevyClient != nil {
		if err := s.syncWorkouts(ctx, progress, result); err != nil {
			return result, fmt.Errorf("syncing workouts: %w", err)
		}
	}

	if s.stravaClient != nil {
		if err := s.syncActivities(ctx, progress, result); err != nil {
			return result, fmt.Errorf("syncing activities: %w", err)
		}
		if err := s.syncSplits(ctx, progress, result); err != nil {
			return result, fmt.Errorf("syncing splits: %w", err)
		}
	}

	return result, nil
}

// syncWorkouts fetches all Hevy workouts and stores them with body-part
// aggregates resolved through the exercise catalog
func (s *SyncService) syncWorkouts(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	if progress != nil {
		progress <- SyncProgress{Phase: "workouts"}
	}

	workouts, err := s.hevyClient.GetAllWorkouts(ctx, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Phase: "workouts", Total: fetched, Completed: 0}
		}
	})
	if err != nil {
		return err
	}
	result.WorkoutsFetched = len(workouts)

	for i, w := range workouts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:     "workouts",
				Total:     len(workouts),
				Completed: i,
				Current:   w.Title,
			}
		}

		converted := hevy.ConvertWorkout(w, func(templateID string) string {
			template, err := s.hevyClient.GetExerciseTemplate(ctx, templateID)
			if err != nil {
				return ""
			}
			return template.PrimaryMuscleGroup
		})

		if err := s.store.UpsertWorkout(&converted); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing workout %s: %w", w.ID, err))
			continue
		}
		result.WorkoutsStored++
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "workouts", Total: len(workouts), Completed: len(workouts)}
	}

	s.store.SetSyncState("last_workout_sync", time.Now().Format(time.RFC3339))
	return nil
}

// syncActivities fetches Strava activity summaries since the last sync and
// stores the runs
func (s *SyncService) syncActivities(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	lastSyncStr, _ := s.store.GetSyncState("last_activity_sync")
	var after time.Time
	if lastSyncStr != "" {
		after, _ = time.Parse(time.RFC3339, lastSyncStr)
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "activities"}
	}

	activities, err := s.stravaClient.GetAllActivities(ctx, after, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Phase: "activities", Total: fetched}
		}
	})
	if err != nil {
		return err
	}

	for _, a := range activities {
		if !a.IsRun() {
			continue
		}
		if err := s.store.UpsertActivity(convertActivity(a)); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
			continue
		}
		result.ActivitiesStored++
	}

	if progress != nil {
		progress <- SyncProgress{
			Phase:     "activities",
			Total:     len(activities),
			Completed: result.ActivitiesStored,
		}
	}

	s.store.SetSyncState("last_activity_sync", time.Now().Format(time.RFC3339))
	return nil
}

// splitsBatchSize caps detail fetches per sync to stay inside Strava's
// 15-minute request budget
const splitsBatchSize = 50

// syncSplits fetches detailed activity records for stored runs that have no
// mile splits yet
func (s *SyncService) syncSplits(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	activities, err := s.store.ListActivities()
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}

	var pending []store.Activity
	for _, a := range activities {
		if len(a.Splits) == 0 {
			pending = append(pending, a)
		}
	}
	if len(pending) > splitsBatchSize {
		pending = pending[:splitsBatchSize]
	}
	if len(pending) == 0 {
		return nil
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "splits", Total: len(pending)}
	}

	for i, a := range pending {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:     "splits",
				Total:     len(pending),
				Completed: i,
				Current:   a.Name,
			}
		}

		stravaID, err := strconv.ParseInt(a.ID, 10, 64)
		if err != nil {
			// Imported activities can have non-Strava IDs; skip them
			continue
		}

		detail, err := s.stravaClient.GetActivity(ctx, stravaID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("activity %s (%s): %w", a.ID, a.Name, err))
			continue
		}

		splits := detail.FullMileSplits()
		if len(splits) == 0 {
			continue
		}

		for mile, seconds := range splits {
			a.Splits = append(a.Splits, store.MileSplit{Mile: mile + 1, Seconds: seconds})
		}
		if err := s.store.UpsertActivity(&a); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("saving splits for %s: %w", a.ID, err))
			continue
		}
		result.SplitsFetched++
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "splits", Total: len(pending), Completed: len(pending)}
	}

	return nil
}

// RateLimitStatus returns Strava's current rate limit status
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	if s.stravaClient == nil {
		return 0, 0
	}
	return s.stravaClient.RateLimitStatus()
}

// convertActivity converts a Strava API activity to a store activity
func convertActivity(a strava.Activity) *store.Activity {
	return &store.Activity{
		ID:              strconv.FormatInt(a.ID, 10),
		Date:            a.StartDateLocal,
		Name:            a.Name,
		DistanceMiles:   a.DistanceMiles(),
		DurationSeconds: a.MovingTime,
	}
}

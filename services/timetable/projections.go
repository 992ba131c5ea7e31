package timetable

import (
	"context"
	"encoding/json"

	"timegrid/models"
	"timegrid/utils"

	"go.uber.org/zap"
)

// Projections are pure, order-preserving filters over the canonical entry
// list. Results are cached in Redis under per-room keys and invalidated on
// every mutation of that room's document, so a cached read is always either
// fully before or fully after a write.

func projectionKey(scope, id, extra string) string {
	if extra == "" {
		return utils.ProjectionCachePrefix + scope + ":" + id
	}
	return utils.ProjectionCachePrefix + scope + ":" + id + ":" + extra
}

// ByRoom returns the entries scheduled in the given room, in canonical order.
func (s *DefaultTimetableService) ByRoom(ctx context.Context, roomID string) ([]models.ScheduleEntry, error) {
	cacheKey := projectionKey("room", roomID, "")
	if cached, ok := s.cachedProjection(ctx, cacheKey); ok {
		return cached, nil
	}

	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return []models.ScheduleEntry{}, nil
	}

	entries := tt.ScheduleForRoom(roomID)
	s.storeProjection(ctx, cacheKey, entries)
	return entries, nil
}

// ByDay returns the day-index slice of the room's timetable for the given
// day. An unknown day or an absent timetable yields an empty sequence.
func (s *DefaultTimetableService) ByDay(ctx context.Context, roomID, day string) ([]models.ScheduleEntry, error) {
	d, ok := models.CanonicalDay(day)
	if !ok {
		return []models.ScheduleEntry{}, nil
	}

	cacheKey := projectionKey("room", roomID, "day:"+string(d))
	if cached, ok := s.cachedProjection(ctx, cacheKey); ok {
		return cached, nil
	}

	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return []models.ScheduleEntry{}, nil
	}

	entries := tt.ScheduleForDay(string(d))
	s.storeProjection(ctx, cacheKey, entries)
	return entries, nil
}

// ByFaculty returns the entries assigned to a faculty member across every
// room's timetable, in canonical order per document.
func (s *DefaultTimetableService) ByFaculty(ctx context.Context, facultyID string) ([]models.ScheduleEntry, error) {
	tts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := []models.ScheduleEntry{}
	for i := range tts {
		entries = append(entries, tts[i].ScheduleForFaculty(facultyID)...)
	}
	return entries, nil
}

func (s *DefaultTimetableService) cachedProjection(ctx context.Context, key string) ([]models.ScheduleEntry, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var entries []models.ScheduleEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		s.logger().Warn("dropping corrupt projection cache entry", zap.String("key", key), zap.Error(err))
		s.Cache.Del(ctx, key)
		return nil, false
	}
	return entries, true
}

func (s *DefaultTimetableService) storeProjection(ctx context.Context, key string, entries []models.ScheduleEntry) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, utils.ProjectionCacheTTL).Err(); err != nil {
		s.logger().Warn("failed to cache projection", zap.String("key", key), zap.Error(err))
	}
}

// invalidateProjections drops every cached projection derived from the
// room's document. Called under the room lock by all mutation paths.
func (s *DefaultTimetableService) invalidateProjections(ctx context.Context, roomID string) {
	if s.Cache == nil {
		return
	}
	keys := []string{projectionKey("room", roomID, "")}
	for _, d := range models.Weekdays {
		keys = append(keys, projectionKey("room", roomID, "day:"+string(d)))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		s.logger().Warn("failed to invalidate projection cache",
			zap.String("room", roomID), zap.Error(err))
	}
}

package vnres

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"football-live-service/internal/domain"
	"football-live-service/internal/logging"
)

// roomJob addresses one broadcaster room of one live entry so results can
// be stitched back in room-iteration order.
type roomJob struct {
	entry int
	slot  int
	room  int64
}

// resolveDayStreams fans out room-detail lookups for all live entries of a
// day on a bounded worker pool, then attaches the links to each entry in
// room order. Entries that are not live, or have no anchors, are left with
// no streams.
func (c *Client) resolveDayStreams(ctx context.Context, entries []dayEntry) {
	var jobs []roomJob
	perEntry := make(map[int][][]domain.StreamLink, len(entries))
	for i := range entries {
		if entries[i].status != domain.StatusLive {
			continue
		}
		rooms := entries[i].raw.rooms()
		if len(rooms) == 0 {
			continue
		}
		perEntry[i] = make([][]domain.StreamLink, len(rooms))
		for slot, room := range rooms {
			jobs = append(jobs, roomJob{entry: i, slot: slot, room: room})
		}
	}
	if len(jobs) == 0 {
		return
	}

	results := make([][]domain.StreamLink, len(jobs))
	c.runRoomJobs(ctx, jobs, results)

	for j, job := range jobs {
		perEntry[job.entry][job.slot] = results[j]
	}
	for i, slots := range perEntry {
		var links []domain.StreamLink
		for _, slot := range slots {
			links = append(links, slot...)
		}
		entries[i].streams = links
	}
}

func (c *Client) runRoomJobs(ctx context.Context, jobs []roomJob, results [][]domain.StreamLink) {
	workers := c.streamWorkers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers <= 1 {
		for j, job := range jobs {
			results[j] = c.resolveRoom(ctx, job.room)
		}
		return
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		for j, job := range jobs {
			results[j] = c.resolveRoom(ctx, job.room)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for j, job := range jobs {
		j, job := j, job
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			results[j] = c.resolveRoom(ctx, job.room)
		}); submitErr != nil {
			wg.Done()
			results[j] = c.resolveRoom(ctx, job.room)
		}
	}
	wg.Wait()
}

// resolveRoom fetches one room's detail envelope and returns its playable
// links: an SD entry when the standard manifest is present, an HD entry
// when the high-definition one is. Failures degrade to no links; the
// caller never sees an error from a single room.
func (c *Client) resolveRoom(ctx context.Context, room int64) []domain.StreamLink {
	start := time.Now()
	links, err := c.fetchRoomStreams(ctx, room)
	c.metrics.RecordResolve(time.Since(start), err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "room resolve failed",
			slog.String(logging.FieldProvider, providerName),
			slog.Int64(logging.FieldRoom, room),
			slog.Any("error", err),
		)
		return nil
	}
	return links
}

func (c *Client) fetchRoomStreams(ctx context.Context, room int64) ([]domain.StreamLink, error) {
	text, err := c.fetchText(ctx, c.detailURL(room))
	if err != nil {
		return nil, err
	}

	env, err := extractEnvelope(text, detailPattern)
	if err != nil {
		return nil, err
	}
	if env.Code != successCode {
		return nil, nil
	}

	var data detailData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	if data.Stream == nil {
		return nil, nil
	}

	var links []domain.StreamLink
	if data.Stream.M3U8 != "" {
		links = append(links, domain.StreamLink{Label: "SD", URL: data.Stream.M3U8})
	}
	if data.Stream.HDM3U8 != "" {
		links = append(links, domain.StreamLink{Label: "HD", URL: data.Stream.HDM3U8})
	}
	return links, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/loggateway/api/gateway/domain"
	"github.com/loggateway/api/gateway/errs"
	"github.com/loggateway/api/pkg/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DeleteLogsByUserID deletes every record owned by the user, one store call
// per record. Deletions are independent: a failure is recorded and the rest
// still run, so the result may be partial.
func (svc *Service) DeleteLogsByUserID(ctx context.Context, userID int64) (*domain.BulkDeleteResult, error) {
	objectIDs, listed, err := svc.collectObjectIDs(ctx, domain.Filter{}.Eq(domain.FieldUserID, userID))
	if err != nil {
		return nil, err
	}
	result := &domain.BulkDeleteResult{Matched: listed}
	if listed == 0 {
		logger.Logger(ctx).Info().Msgf("no logs found for user_id %d", userID)
		return result, nil
	}
	if len(objectIDs) == 0 {
		logger.Logger(ctx).Warn().Msgf("none of the %d logs for user_id %d has an objectId", listed, userID)
		return result, nil
	}
	logger.Logger(ctx).Debug().Msgf("deleting %d logs for user_id %d", len(objectIDs), userID)

	failures := make([]error, len(objectIDs))
	g := errgroup.Group{}
	g.SetLimit(svc.bulkDelete.Concurrency)
	for i, objectID := range objectIDs {
		g.Go(func() error {
			failures[i] = svc.Store.Delete(ctx, objectID)
			return nil
		})
	}
	_ = g.Wait()

	for i, failure := range failures {
		if failure == nil {
			result.DeletedCount++
			continue
		}
		logger.Logger(ctx).Warn().Err(failure).Msgf("failed to delete log %s", objectIDs[i])
		result.Errors = append(result.Errors, fmt.Sprintf("error deleting %s: %s", objectIDs[i], failureDetail(failure)))
	}
	return result, nil
}

// collectObjectIDs pages through every record matching the filter before
// anything is deleted, so deletions cannot shift the pages being read. It
// returns the usable ids and the number of distinct records listed.
func (svc *Service) collectObjectIDs(ctx context.Context, filter domain.Filter) ([]string, int, error) {
	pageSize := svc.bulkDelete.PageSize
	seen := make(map[string]struct{})
	objectIDs := []string{}
	listed := 0
	for offset := 0; ; offset += pageSize {
		payload, err := svc.Store.List(ctx, &domain.ListOptions{
			Filter:   filter,
			PageSize: pageSize,
			Offset:   offset,
			SortBy:   domain.DefaultSortBy,
		})
		if err != nil {
			return nil, 0, err
		}
		records, err := domain.DecodeRecords(payload)
		if err != nil {
			return nil, 0, errors.Wrap(err, "decode store list response")
		}

		added, missing := 0, 0
		for _, raw := range records {
			record, err := domain.DecodeRecord(raw)
			if err != nil || record.ObjectID == "" {
				logger.Logger(ctx).Warn().Msgf("skipping log without objectId: %s", string(raw))
				missing++
				continue
			}
			if _, ok := seen[record.ObjectID]; ok {
				continue
			}
			seen[record.ObjectID] = struct{}{}
			objectIDs = append(objectIDs, record.ObjectID)
			added++
		}
		// A later page with nothing new is a repeat of an earlier one.
		if added > 0 || offset == 0 {
			listed += added + missing
		}
		// A short page is the last one. A page with nothing new means the
		// store ignored the offset.
		if len(records) < pageSize || added == 0 {
			return objectIDs, listed, nil
		}
	}
}

func failureDetail(err error) string {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok && httpErr.Details != "" {
		return httpErr.Details
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound.Error()
	}
	return err.Error()
}

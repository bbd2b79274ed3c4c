package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// tableService implements TableService on top of the table repository.
type tableService struct {
	tables repositories.TableRepository
}

// NewTableService creates a new table service instance.
func NewTableService(tables repositories.TableRepository) TableService {
	return &tableService{tables: tables}
}

// ListAll scans every record, projects it to the public shape and sorts by
// id ascending.
func (s *tableService) ListAll(ctx context.Context) (*models.TableListResponse, error) {
	records, err := s.tables.List(ctx)
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to list tables: "+err.Error(), err)
	}

	tables := make([]models.Table, 0, len(records))
	for _, record := range records {
		table, err := projectTable(record)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *table)
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].ID < tables[j].ID
	})

	return &models.TableListResponse{Tables: tables}, nil
}

// Create validates field presence and persists the record keyed by the
// string form of the caller-supplied id.
func (s *tableService) Create(ctx context.Context, req *models.CreateTableRequest) (*models.CreateTableResponse, error) {
	if req.ID == nil {
		return nil, NewError(KindInvalidInput, "Missing or invalid field: id")
	}
	if req.Number == nil {
		return nil, NewError(KindInvalidInput, "Missing or invalid field: number")
	}
	if req.Places == nil {
		return nil, NewError(KindInvalidInput, "Missing or invalid field: places")
	}
	if req.IsVip == nil {
		return nil, NewError(KindInvalidInput, "Missing or invalid field: isVip")
	}

	record := models.TableRecord{
		ID:       strconv.Itoa(*req.ID),
		Number:   *req.Number,
		Places:   *req.Places,
		IsVip:    *req.IsVip,
		MinOrder: req.MinOrder,
	}

	if err := s.tables.Put(ctx, record); err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to create table: "+err.Error(), err)
	}

	logrus.WithField("tableId", record.ID).Info("table created")
	return &models.CreateTableResponse{ID: *req.ID}, nil
}

// GetByID point-looks-up one record by its string id.
func (s *tableService) GetByID(ctx context.Context, id string) (*models.Table, error) {
	logrus.WithField("tableId", id).Info("retrieving table")

	record, err := s.tables.GetByID(ctx, id)
	if repositories.IsNotFound(err) {
		return nil, NewError(KindNotFound, "Table not found")
	}
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to get table: "+err.Error(), err)
	}

	return projectTable(*record)
}

// projectTable converts a stored record to the public shape, parsing the
// string key back to its numeric id.
func projectTable(record models.TableRecord) (*models.Table, error) {
	id, err := strconv.Atoi(record.ID)
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Invalid table record id: "+record.ID, err)
	}

	return &models.Table{
		ID:       id,
		Number:   record.Number,
		Places:   record.Places,
		IsVip:    record.IsVip,
		MinOrder: record.MinOrder,
	}, nil
}

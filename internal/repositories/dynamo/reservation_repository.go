package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// ReservationRepository stores reservation records in a DynamoDB table
// keyed by the string attribute "id".
type ReservationRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewReservationRepository creates a reservation repository bound to the
// given table.
func NewReservationRepository(client *dynamodb.Client, tableName string) *ReservationRepository {
	return &ReservationRepository{client: client, tableName: tableName}
}

// List scans the full table.
func (r *ReservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, repositories.NewRepositoryError("scan", "reservation", "", err)
		}

		var pageRecords []models.Reservation
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, repositories.NewRepositoryError("unmarshal", "reservation", "", err)
		}
		reservations = append(reservations, pageRecords...)
	}

	return reservations, nil
}

// Put stores a record unconditionally. The overlap check in the service and
// this write are deliberately not transactional; see the design notes.
func (r *ReservationRepository) Put(ctx context.Context, reservation models.Reservation) error {
	item, err := attributevalue.MarshalMap(reservation)
	if err != nil {
		return repositories.NewRepositoryError("marshal", "reservation", reservation.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", "reservation", reservation.ID, err)
	}
	return nil
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ArenaBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

var (
	errInvalidDate = fmt.Errorf("invalid date")
	errInvalidTime = fmt.Errorf("invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SportID   int64  `json:"sportId"`
	Date      string `json:"date"`      // "2025-06-14"
	StartTime string `json:"startTime"` // "18:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		UserID:    userID,
		SportID:   r.SportID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	SportID     int64     `json:"sportId"`
	BookingDate string    `json:"bookingDate"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		SportID:     resp.SportID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		Price:       resp.Price,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

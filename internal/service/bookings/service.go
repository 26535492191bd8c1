package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/ptr"
)

// rescheduleReason причина отмены исходного бронирования при переносе
const rescheduleReason = "rescheduled"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	creator     BookingCreator
	txManager   TransactionManager
	events      EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	creator BookingCreator,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		creator:     creator,
		txManager:   txManager,
		events:      events,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор любое
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !canAccess(booking, actor) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, ptr.Value(req.Status))

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSportBookings получает бронирования площадки с фильтрацией (для администратора)
func (s *Service) GetSportBookings(ctx context.Context, req *models.GetSportBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetSportBookings: fetching bookings for sport=%d", req.SportID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSportBookings: invalid filter for sport=%d: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetBySportWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSportBookings: repository error for sport=%d: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: GetSportBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSportBookings: successfully fetched %d bookings for sport=%d", len(bookings), req.SportID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить может владелец или администратор, только pending/confirmed
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.Actor.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var cancelled *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.cancelInTx(txCtx, "Cancel", bookingID, req.Actor, req.CancellationReason)
		if err != nil {
			return err
		}
		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.events.BookingCancelled(ctx, cancelled)
	return nil
}

// Confirm подтверждает pending бронирование (после оплаты)
func (s *Service) Confirm(ctx context.Context, bookingID int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, actor.UserID)

	var confirmed *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Confirm", bookingID)
		if err != nil {
			return err
		}

		if !canAccess(booking, actor) {
			s.logger.Warn("Confirm: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
			return ErrAccessDenied
		}

		if booking.Status != domain.StatusPending {
			s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
			return ErrCannotConfirm
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		confirmed = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	s.events.BookingConfirmed(ctx, confirmed)
	return models.FromDomainBooking(confirmed), nil
}

// Reschedule переносит бронирование: отмена старого и создание нового в одной транзакции
// Новое бронирование создается на ту же площадку со статусом pending и актуальной ценой
func (s *Service) Reschedule(ctx context.Context, bookingID int64, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: moving booking id=%d to %s %s by user=%d",
		bookingID, req.Date.Format(domain.DateFormat), req.StartTime, req.Actor.UserID)

	var cancelled, created *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		old, err := s.cancelInTx(txCtx, "Reschedule", bookingID, req.Actor, ptr.Ptr(rescheduleReason))
		if err != nil {
			return err
		}

		booking, err := s.creator.CreateInTx(txCtx, &create_booking.Request{
			UserID:    old.UserID,
			SportID:   old.SportID,
			Date:      req.Date,
			StartTime: req.StartTime,
		})
		if err != nil {
			return mapCreateError(err)
		}

		cancelled, created = old, booking
		return nil
	})
	if err != nil {
		s.logger.Warn("Reschedule: booking id=%d was not moved: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("Reschedule: booking id=%d moved to booking id=%d", bookingID, created.ID)
	s.events.BookingCancelled(ctx, cancelled)
	s.events.BookingCreated(ctx, created)
	return models.FromDomainBooking(created), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// cancelInTx отменяет бронирование в транзакции из контекста и возвращает его новое состояние
func (s *Service) cancelInTx(ctx context.Context, method string, bookingID int64, actor models.Actor, reason *string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, method, bookingID)
	if err != nil {
		return nil, err
	}

	if !canAccess(booking, actor) {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", method, actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("%s: booking id=%d cannot be cancelled, status=%s", method, bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			return nil, ErrCannotCancel
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	now := time.Now()
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = reason
	booking.CancelledAt = &now

	return booking, nil
}

// canAccess владелец или администратор
func canAccess(booking *domain.Booking, actor models.Actor) bool {
	return actor.IsAdmin || booking.UserID == actor.UserID
}

// mapCreateError переводит ошибки создания бронирования в ошибки сервиса
func mapCreateError(err error) error {
	switch {
	case errors.Is(err, create_booking.ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, create_booking.ErrSportNotFound):
		return ErrSportNotFound
	case errors.Is(err, create_booking.ErrInvalidConfiguration):
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	case errors.Is(err, create_booking.ErrInvalidInput),
		errors.Is(err, create_booking.ErrInvalidDate),
		errors.Is(err, create_booking.ErrDateTooFarInFuture),
		errors.Is(err, create_booking.ErrTooLateToBook),
		errors.Is(err, create_booking.ErrInvalidTimeSlot):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

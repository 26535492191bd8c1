package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	resolver           AvailabilityResolver
	bookingRepo        BookingRepository
	txManager          TransactionManager
	events             EventPublisher
	timeProvider       TimeProvider
	advanceBookingDays int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver AvailabilityResolver,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	events EventPublisher,
	timeProvider TimeProvider,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:           resolver,
		bookingRepo:        bookingRepo,
		txManager:          txManager,
		events:             events,
		timeProvider:       timeProvider,
		advanceBookingDays: advanceBookingDays,
		logger:             logger,
	}
}

// Execute выполняет use case создания бронирования
// Расчет доступности и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.CreateInTx(txCtx, req)
		if err != nil {
			return err
		}
		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	uc.events.BookingCreated(ctx, created)

	return toResponse(created), nil
}

// CreateInTx создает бронирование в транзакции из контекста
// Используется напрямую при переносе бронирования, события не публикует
func (uc *UseCase) CreateInTx(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%d, sport=%d, date=%s, time=%s",
		req.UserID, req.SportID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и время относительно текущего момента
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	if err := validateDate(date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateBookingTime(date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 3. Рассчитываем сетку (бронирования на дату читаются FOR UPDATE)
	availability, err := uc.resolver.Execute(ctx, &resolve_availability.Request{
		SportID: req.SportID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolve_availability.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, resolve_availability.ErrInvalidConfiguration):
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		case errors.Is(err, resolve_availability.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to resolve availability: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
	}

	// 4. Проверяем, что слот есть в сетке и свободен
	slot, ok := findSlot(availability.Slots, req.StartTime)
	if !ok {
		uc.logger.Warn("CreateBooking: %s is not a slot start for sport=%d", req.StartTime, req.SportID)
		return nil, fmt.Errorf("%w: %s is not a slot start", ErrInvalidTimeSlot, req.StartTime)
	}

	if !slot.IsAvailable() || slot.Price == nil {
		uc.logger.Warn("CreateBooking: slot %s for sport=%d is %s", slot.StartTime, req.SportID, slot.Status)
		return nil, ErrSlotNotAvailable
	}

	// 5. Сохраняем бронирование с зафиксированной ценой
	booking := &domain.Booking{
		UserID:      req.UserID,
		SportID:     req.SportID,
		BookingDate: date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Status:      domain.StatusPending,
		Price:       *slot.Price,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: concurrent booking for sport=%d at %s: %v", req.SportID, req.StartTime, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		SportID:     b.SportID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

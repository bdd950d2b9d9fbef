package commands

import (
	"context"
	"log/slog"
	"time"

	"workshop-booking/internal/domain/workshop"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/shared"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SlotInput struct {
	StartTime string `validate:"required"`
	EndTime   string `validate:"required"`
}

type PublishWorkshopInput struct {
	Title       string      `validate:"required,min=3,max=255"`
	Description string      `validate:"required,min=10"`
	ScheduledAt time.Time   `validate:"required"`
	Capacity    int         `validate:"required,gt=0"`
	Slots       []SlotInput `validate:"required,min=1,dive"`
}

type AddSlotInput struct {
	WorkshopID uuid.UUID `validate:"required"`
	SlotInput
}

type UpdateSlotInput struct {
	SlotID uuid.UUID `validate:"required"`
	SlotInput
}

type WorkshopCommands interface {
	PublishWorkshop(ctx context.Context, input PublishWorkshopInput) (uuid.UUID, error)
	AddSlot(ctx context.Context, input AddSlotInput) (uuid.UUID, error)
	UpdateSlotLabels(ctx context.Context, input UpdateSlotInput) error
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
	SoftDeleteWorkshop(ctx context.Context, workshopID uuid.UUID) error
	RestoreWorkshop(ctx context.Context, workshopID uuid.UUID) error
}

type workshopCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	validate *validator.Validate
}

func NewWorkshopCommands(uow shared.UnitOfWork, clk clock.Clock, validate *validator.Validate) WorkshopCommands {
	return &workshopCommandsImpl{
		uow:      uow,
		clock:    clk,
		validate: validate,
	}
}

func (w *workshopCommandsImpl) PublishWorkshop(ctx context.Context, input PublishWorkshopInput) (uuid.UUID, error) {
	if err := w.validate.Struct(input); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	labels := make([]workshop.SlotLabels, len(input.Slots))
	for i, s := range input.Slots {
		labels[i] = workshop.SlotLabels{Start: s.StartTime, End: s.EndTime}
	}

	entity, err := workshop.NewWorkshop(input.Title, input.Description, input.ScheduledAt, input.Capacity, labels)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Workshops().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, translateWorkshopErr(err)
	}

	slog.Info("workshop published",
		"workshop_id", entity.ID().String(),
		"slots", len(entity.Slots()),
		"capacity", entity.Capacity())

	return entity.ID(), nil
}

func (w *workshopCommandsImpl) AddSlot(ctx context.Context, input AddSlotInput) (uuid.UUID, error) {
	if err := w.validate.Struct(input); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var slotID uuid.UUID
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		parent, err := tx.Workshops().GetForUpdate(ctx, input.WorkshopID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWorkshopNotFound
			}
			return err
		}
		if parent.IsDeleted() {
			return ErrWorkshopNotFound
		}

		slot, err := workshop.NewSlot(parent.ID(), parent.Capacity(), workshop.SlotLabels{
			Start: input.StartTime,
			End:   input.EndTime,
		})
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Workshops().AddSlot(ctx, slot); err != nil {
			return err
		}

		slotID = slot.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, translateWorkshopErr(err)
	}
	return slotID, nil
}

// UpdateSlotLabels rewrites display times only; remaining seats stay owned by the reservation flow.
func (w *workshopCommandsImpl) UpdateSlotLabels(ctx context.Context, input UpdateSlotInput) error {
	if err := w.validate.Struct(input); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	labels, err := workshop.NormalizeLabels(workshop.SlotLabels{Start: input.StartTime, End: input.EndTime})
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Workshops().UpdateSlotLabels(ctx, input.SlotID, labels); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return translateWorkshopErr(err)
	}
	return nil
}

func (w *workshopCommandsImpl) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	if slotID == uuid.Nil {
		return ErrSlotNotFound
	}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the slot lock keeps a concurrent Reserve from slipping in after the count
		slot, err := tx.Slots().LockSlot(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if slot.SlotDeletedAt != nil {
			return ErrSlotNotFound
		}

		active, err := tx.Bookings().CountActiveBySlot(ctx, slotID)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrSlotInUse
		}

		return tx.Workshops().SoftDeleteSlot(ctx, slotID, w.clock.Now())
	})
	if err != nil {
		return translateWorkshopErr(err)
	}

	slog.Info("slot deleted", "slot_id", slotID.String())
	return nil
}

func (w *workshopCommandsImpl) SoftDeleteWorkshop(ctx context.Context, workshopID uuid.UUID) error {
	now := w.clock.Now()
	return w.setWorkshopDeletedAt(ctx, workshopID, &now)
}

func (w *workshopCommandsImpl) RestoreWorkshop(ctx context.Context, workshopID uuid.UUID) error {
	return w.setWorkshopDeletedAt(ctx, workshopID, nil)
}

func (w *workshopCommandsImpl) setWorkshopDeletedAt(ctx context.Context, workshopID uuid.UUID, at *time.Time) error {
	if workshopID == uuid.Nil {
		return ErrWorkshopNotFound
	}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Workshops().SetDeletedAt(ctx, workshopID, at); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWorkshopNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return translateWorkshopErr(err)
	}

	slog.Info("workshop visibility changed",
		"workshop_id", workshopID.String(),
		"deleted", at != nil)
	return nil
}

func translateWorkshopErr(err error) error {
	switch {
	case isOutcome(err), errs.Is(err, ErrDomainValidation), errs.Is(err, shared.ErrTransient):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

package hotel

import (
	"context"
	"fmt"
)

// AddStaff inserts a roster entry keyed by staff id.
func (service *Service) AddStaff(ctx context.Context, member StaffMember) error {
	operationError := service.addStaff(ctx, member)
	service.logOperation(ctx, OperationLog{
		Operation: operationAddStaff,
		Amount:    member.Salary.Float64(),
		Error:     operationError,
	})
	return operationError
}

func (service *Service) addStaff(ctx context.Context, member StaffMember) error {
	if len(service.staff) >= service.staffLimit {
		return fmt.Errorf("%w: staff limit %d reached", ErrCapacityExceeded, service.staffLimit)
	}
	for _, existing := range service.staff {
		if existing.ID == member.ID {
			return fmt.Errorf("%w: %d", ErrDuplicateStaffID, member.ID)
		}
	}
	service.staff = append(service.staff, member)
	if err := service.store.SaveStaff(ctx, service.staff); err != nil {
		service.staff = service.staff[:len(service.staff)-1]
		return err
	}
	return nil
}

// Staff returns the roster in insertion order.
func (service *Service) Staff() []StaffMember {
	staff := make([]StaffMember, len(service.staff))
	copy(staff, service.staff)
	return staff
}

// RemoveStaff deletes a roster entry by id, preserving the order of the
// remaining entries.
func (service *Service) RemoveStaff(ctx context.Context, id int) error {
	operationError := service.removeStaff(ctx, id)
	service.logOperation(ctx, OperationLog{
		Operation: operationRemoveStaff,
		Error:     operationError,
	})
	return operationError
}

func (service *Service) removeStaff(ctx context.Context, id int) error {
	index := -1
	for position, member := range service.staff {
		if member.ID == id {
			index = position
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrStaffNotFound, id)
	}
	previous := make([]StaffMember, len(service.staff))
	copy(previous, service.staff)
	service.staff = append(service.staff[:index], service.staff[index+1:]...)
	if err := service.store.SaveStaff(ctx, service.staff); err != nil {
		service.staff = previous
		return err
	}
	return nil
}

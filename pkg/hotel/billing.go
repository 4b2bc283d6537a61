package hotel

import (
	"context"
	"fmt"
)

// StayBill computes the room charge for the booking matching the phone
// number: a flat nightly count times the room's price. An unknown phone, or
// a booking whose room no longer resolves, bills zero rather than erroring.
// The nightly count is fixed configuration, not derived from the stay dates.
func (service *Service) StayBill(phone Phone) Price {
	for _, booking := range service.bookings {
		if booking.Phone != phone {
			continue
		}
		for _, room := range service.rooms {
			if room.Number == booking.Room {
				return Price(float64(service.stayNights) * room.Price.Float64())
			}
		}
	}
	return 0
}

// GenerateInvoice bills a stay plus an ad hoc service charge, posts both to
// the revenue totals, and persists the triple before returning the invoice.
func (service *Service) GenerateInvoice(ctx context.Context, phone Phone, serviceCharge Price) (Invoice, error) {
	stayBill := service.StayBill(phone)
	invoice := Invoice{
		StayBill:      stayBill,
		ServiceCharge: serviceCharge,
		Total:         stayBill + serviceCharge,
	}
	previousRoomRevenue := service.roomRevenue
	previousServiceRevenue := service.serviceRevenue
	service.roomRevenue += stayBill.Float64()
	service.serviceRevenue += serviceCharge.Float64()
	operationError := service.store.SaveRevenue(ctx, service.Revenue())
	if operationError != nil {
		service.roomRevenue = previousRoomRevenue
		service.serviceRevenue = previousServiceRevenue
	}
	service.logOperation(ctx, OperationLog{
		Operation: operationInvoice,
		Phone:     phone,
		Amount:    invoice.Total.Float64(),
		Error:     operationError,
	})
	if operationError != nil {
		return Invoice{}, operationError
	}
	return invoice, nil
}

// AddServiceToRoom bills a service against a room. The room must exist but
// need not be occupied; services can be billed against a room rather than a
// specific stay. Totals are untouched when the room is unknown.
func (service *Service) AddServiceToRoom(ctx context.Context, number RoomNumber, serviceName string, cost Price) error {
	operationError := service.addServiceToRoom(ctx, number, cost)
	service.logOperation(ctx, OperationLog{
		Operation: operationAddService,
		Room:      number,
		Amount:    cost.Float64(),
		Error:     operationError,
	})
	return operationError
}

func (service *Service) addServiceToRoom(ctx context.Context, number RoomNumber, cost Price) error {
	if service.roomIndex(number) < 0 {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, number.Int())
	}
	previousServiceRevenue := service.serviceRevenue
	service.serviceRevenue += cost.Float64()
	if err := service.store.SaveRevenue(ctx, service.Revenue()); err != nil {
		service.serviceRevenue = previousServiceRevenue
		return err
	}
	return nil
}

// Revenue returns the running totals with the grand total recomputed.
func (service *Service) Revenue() RevenueTotals {
	return RevenueTotals{
		Room:    service.roomRevenue,
		Service: service.serviceRevenue,
		Total:   service.roomRevenue + service.serviceRevenue,
	}
}

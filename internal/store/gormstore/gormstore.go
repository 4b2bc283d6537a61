// Package gormstore is the database-backed persistence option: the same
// store and logbook contracts as the flat-file codec, over sqlite or
// postgres through GORM. Each save replaces the resource's rows inside one
// transaction, preserving the full-rewrite semantics of the file backend.
package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

const (
	revenueRowID = 1

	errorOperationStore     = "store"
	errorSubjectRooms       = "rooms"
	errorSubjectBookings    = "bookings"
	errorSubjectStaff       = "staff"
	errorSubjectRevenue     = "revenue"
	errorSubjectMaintenance = "maintenance"
	errorSubjectFeedback    = "feedback"
	errorSubjectEvent       = "event"
	errorCodeLoad           = "load"
	errorCodeSave           = "save"
	errorCodeAppend         = "append"
	errorCodeList           = "list"
	errorCodeInvalid        = "invalid"
)

// Store implements hotel.Store and hotel.Logbook using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates every table the store uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&RoomRow{},
		&BookingRow{},
		&StaffRow{},
		&RevenueRow{},
		&MaintenanceRow{},
		&FeedbackRow{},
		&BookingEventRow{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Load reads every resource in insertion order.
func (store *Store) Load(ctx context.Context) (hotel.State, error) {
	var state hotel.State

	var roomRows []RoomRow
	if err := store.db.WithContext(ctx).Order("position").Find(&roomRows).Error; err != nil {
		return hotel.State{}, wrapStoreError(errorSubjectRooms, errorCodeLoad, err)
	}
	for _, row := range roomRows {
		room, err := decodeRoomRow(row)
		if err != nil {
			return hotel.State{}, wrapStoreError(errorSubjectRooms, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		state.Rooms = append(state.Rooms, room)
	}

	var bookingRows []BookingRow
	if err := store.db.WithContext(ctx).Order("position").Find(&bookingRows).Error; err != nil {
		return hotel.State{}, wrapStoreError(errorSubjectBookings, errorCodeLoad, err)
	}
	for _, row := range bookingRows {
		booking, err := decodeBookingRow(row)
		if err != nil {
			return hotel.State{}, wrapStoreError(errorSubjectBookings, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		state.Bookings = append(state.Bookings, booking)
	}

	var staffRows []StaffRow
	if err := store.db.WithContext(ctx).Order("position").Find(&staffRows).Error; err != nil {
		return hotel.State{}, wrapStoreError(errorSubjectStaff, errorCodeLoad, err)
	}
	for _, row := range staffRows {
		salary, err := hotel.NewPrice(row.Salary)
		if err != nil {
			return hotel.State{}, wrapStoreError(errorSubjectStaff, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		member, err := hotel.NewStaffMember(row.StaffID, row.Name, row.Role, salary)
		if err != nil {
			return hotel.State{}, wrapStoreError(errorSubjectStaff, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		state.Staff = append(state.Staff, member)
	}

	var revenueRow RevenueRow
	err := store.db.WithContext(ctx).First(&revenueRow, revenueRowID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return hotel.State{}, wrapStoreError(errorSubjectRevenue, errorCodeLoad, err)
	}
	if err == nil {
		state.Revenue = hotel.RevenueTotals{
			Room:    revenueRow.RoomRevenue,
			Service: revenueRow.ServiceRevenue,
			Total:   revenueRow.RoomRevenue + revenueRow.ServiceRevenue,
		}
	}
	return state, nil
}

// SaveRooms replaces the rooms table with the given collection.
func (store *Store) SaveRooms(ctx context.Context, rooms []hotel.Room) error {
	rows := make([]RoomRow, 0, len(rooms))
	for position, room := range rooms {
		rows = append(rows, RoomRow{
			RoomNumber:       room.Number.Int(),
			Type:             room.Type.String(),
			Price:            room.Price.Float64(),
			Capacity:         room.Capacity,
			Available:        room.Available,
			UnderMaintenance: room.UnderMaintenance,
			Position:         position,
		})
	}
	err := store.replaceAll(ctx, &RoomRow{}, func(tx *gorm.DB) error {
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return wrapStoreError(errorSubjectRooms, errorCodeSave, err)
	}
	return nil
}

// SaveBookings replaces the bookings table with the given collection.
func (store *Store) SaveBookings(ctx context.Context, bookings []hotel.Booking) error {
	rows := make([]BookingRow, 0, len(bookings))
	for position, booking := range bookings {
		rows = append(rows, BookingRow{
			GuestName:  booking.Guest.String(),
			Phone:      booking.Phone.String(),
			RoomNumber: booking.Room.Int(),
			CheckIn:    booking.CheckIn.String(),
			CheckOut:   booking.CheckOut.String(),
			Position:   position,
		})
	}
	err := store.replaceAll(ctx, &BookingRow{}, func(tx *gorm.DB) error {
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return wrapStoreError(errorSubjectBookings, errorCodeSave, err)
	}
	return nil
}

// SaveStaff replaces the staff table with the given roster.
func (store *Store) SaveStaff(ctx context.Context, staff []hotel.StaffMember) error {
	rows := make([]StaffRow, 0, len(staff))
	for position, member := range staff {
		rows = append(rows, StaffRow{
			StaffID:  member.ID,
			Name:     member.Name,
			Role:     member.Role,
			Salary:   member.Salary.Float64(),
			Position: position,
		})
	}
	err := store.replaceAll(ctx, &StaffRow{}, func(tx *gorm.DB) error {
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return wrapStoreError(errorSubjectStaff, errorCodeSave, err)
	}
	return nil
}

// SaveRevenue upserts the single revenue row.
func (store *Store) SaveRevenue(ctx context.Context, totals hotel.RevenueTotals) error {
	row := RevenueRow{
		ID:             revenueRowID,
		RoomRevenue:    totals.Room,
		ServiceRevenue: totals.Service,
		TotalRevenue:   totals.Total,
	}
	err := store.db.WithContext(ctx).Save(&row).Error
	if err != nil {
		return wrapStoreError(errorSubjectRevenue, errorCodeSave, err)
	}
	return nil
}

// AppendMaintenance inserts one maintenance log row.
func (store *Store) AppendMaintenance(ctx context.Context, entry hotel.MaintenanceEntry) error {
	row := MaintenanceRow{
		RoomNumber: entry.Room.Int(),
		Issue:      entry.Issue,
		CreatedAt:  time.Now().UTC(),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return wrapStoreError(errorSubjectMaintenance, errorCodeAppend, err)
	}
	return nil
}

// MaintenanceLines lists maintenance entries, oldest first, rendered in the
// same line format the flat-file log uses.
func (store *Store) MaintenanceLines(ctx context.Context) ([]string, error) {
	var rows []MaintenanceRow
	if err := store.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectMaintenance, errorCodeList, err)
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		number, err := hotel.NewRoomNumber(row.RoomNumber)
		if err != nil {
			return nil, wrapStoreError(errorSubjectMaintenance, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		lines = append(lines, hotel.MaintenanceEntry{Room: number, Issue: row.Issue}.String())
	}
	return lines, nil
}

// AppendFeedback inserts one feedback row.
func (store *Store) AppendFeedback(ctx context.Context, entry hotel.Feedback) error {
	row := FeedbackRow{
		Stars:     entry.Stars,
		Text:      entry.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return wrapStoreError(errorSubjectFeedback, errorCodeAppend, err)
	}
	return nil
}

// Feedback lists feedback entries, oldest first.
func (store *Store) Feedback(ctx context.Context) ([]hotel.Feedback, error) {
	var rows []FeedbackRow
	if err := store.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectFeedback, errorCodeList, err)
	}
	entries := make([]hotel.Feedback, 0, len(rows))
	for _, row := range rows {
		entry, err := hotel.NewFeedback(row.Stars, row.Text)
		if err != nil {
			return nil, wrapStoreError(errorSubjectFeedback, errorCodeInvalid, fmt.Errorf("%w: %v", hotel.ErrResourceUnreadable, err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// AppendEvent records an operation in the booking_events audit table.
func (store *Store) AppendEvent(ctx context.Context, operation string, details map[string]any) error {
	encoded, err := json.Marshal(details)
	if err != nil {
		return wrapStoreError(errorSubjectEvent, errorCodeInvalid, err)
	}
	row := BookingEventRow{
		Operation: operation,
		Details:   datatypes.JSON(encoded),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return wrapStoreError(errorSubjectEvent, errorCodeAppend, err)
	}
	return nil
}

func (store *Store) replaceAll(ctx context.Context, model any, insert func(tx *gorm.DB) error) error {
	return store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
		return insert(tx)
	})
}

func decodeRoomRow(row RoomRow) (hotel.Room, error) {
	number, err := hotel.NewRoomNumber(row.RoomNumber)
	if err != nil {
		return hotel.Room{}, err
	}
	roomType, err := hotel.NewRoomType(row.Type)
	if err != nil {
		return hotel.Room{}, err
	}
	price, err := hotel.NewPrice(row.Price)
	if err != nil {
		return hotel.Room{}, err
	}
	room, err := hotel.NewRoom(number, roomType, price, row.Capacity)
	if err != nil {
		return hotel.Room{}, err
	}
	room.Available = row.Available
	room.UnderMaintenance = row.UnderMaintenance
	return room, nil
}

func decodeBookingRow(row BookingRow) (hotel.Booking, error) {
	guest, err := hotel.NewGuestName(row.GuestName)
	if err != nil {
		return hotel.Booking{}, err
	}
	phone, err := hotel.NewPhone(row.Phone)
	if err != nil {
		return hotel.Booking{}, err
	}
	number, err := hotel.NewRoomNumber(row.RoomNumber)
	if err != nil {
		return hotel.Booking{}, err
	}
	checkIn, err := hotel.NewStayDate(row.CheckIn)
	if err != nil {
		return hotel.Booking{}, err
	}
	checkOut, err := hotel.NewStayDate(row.CheckOut)
	if err != nil {
		return hotel.Booking{}, err
	}
	return hotel.NewBooking(guest, phone, number, checkIn, checkOut), nil
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}

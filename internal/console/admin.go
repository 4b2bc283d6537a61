package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

func (console *Console) adminLogin(ctx context.Context) error {
	password, err := console.readLine("Admin password: ")
	if err != nil {
		return err
	}
	ok, err := console.gate.Verify(password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(console.out, "Incorrect password. Access denied.")
		return nil
	}
	return console.adminPanel(ctx)
}

func (console *Console) adminPanel(ctx context.Context) error {
	for {
		fmt.Fprintln(console.out)
		fmt.Fprintln(console.out, "---- ADMIN PANEL ----")
		fmt.Fprintln(console.out, " 1. View revenue        5. Log maintenance issue")
		fmt.Fprintln(console.out, " 2. Room status chart   6. Add staff")
		fmt.Fprintln(console.out, " 3. View feedback       7. View staff")
		fmt.Fprintln(console.out, " 4. View maintenance    8. Remove staff")
		fmt.Fprintln(console.out, " 9. Mark room under maintenance")
		fmt.Fprintln(console.out, " 0. Back")
		choice, err := console.readInt("Enter choice: ")
		if err != nil {
			return err
		}
		var actionErr error
		switch choice {
		case 0:
			return nil
		case 1:
			console.printRevenue()
		case 2:
			console.printRoomChart()
		case 3:
			actionErr = console.viewFeedback(ctx)
		case 4:
			actionErr = console.viewMaintenanceLog(ctx)
		case 5:
			actionErr = console.logMaintenance(ctx)
		case 6:
			actionErr = console.addStaff(ctx)
		case 7:
			console.printStaff()
		case 8:
			actionErr = console.removeStaff(ctx)
		case 9:
			actionErr = console.markUnderMaintenance(ctx)
		default:
			fmt.Fprintln(console.out, "Invalid choice.")
		}
		if actionErr != nil {
			if isInputEnd(actionErr) {
				return actionErr
			}
			fmt.Fprintf(console.out, "Error: %v\n", actionErr)
		}
	}
}

func (console *Console) printRevenue() {
	totals := console.service.Revenue()
	fmt.Fprintln(console.out, "======== TOTAL PROFITS ========")
	fmt.Fprintf(console.out, "Room revenue:    %.2f\n", totals.Room)
	fmt.Fprintf(console.out, "Service revenue: %.2f\n", totals.Service)
	fmt.Fprintf(console.out, "Total revenue:   %.2f\n", totals.Total)
}

func (console *Console) printRoomChart() {
	available, occupied, maintenance := 0, 0, 0
	for _, room := range console.service.Rooms() {
		switch {
		case room.UnderMaintenance:
			maintenance++
		case room.Available:
			available++
		default:
			occupied++
		}
	}
	fmt.Fprintln(console.out, "ROOM STATUS:")
	fmt.Fprintf(console.out, "Available   %s (%d)\n", strings.Repeat("#", available), available)
	fmt.Fprintf(console.out, "Occupied    %s (%d)\n", strings.Repeat("#", occupied), occupied)
	fmt.Fprintf(console.out, "Maintenance %s (%d)\n", strings.Repeat("#", maintenance), maintenance)
}

func (console *Console) viewMaintenanceLog(ctx context.Context) error {
	lines, err := console.service.MaintenanceLog(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintln(console.out, "No maintenance logs found.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(console.out, "- %s\n", line)
	}
	return nil
}

func (console *Console) logMaintenance(ctx context.Context) error {
	number, err := console.readRoomNumber()
	if err != nil {
		return err
	}
	issue, err := console.readLine("Issue: ")
	if err != nil {
		return err
	}
	if err := console.service.LogMaintenance(ctx, number, issue); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Maintenance logged.")
	return nil
}

func (console *Console) markUnderMaintenance(ctx context.Context) error {
	number, err := console.readRoomNumber()
	if err != nil {
		return err
	}
	if err := console.service.MarkUnderMaintenance(ctx, number); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Room marked under maintenance.")
	return nil
}

func (console *Console) addStaff(ctx context.Context) error {
	id, err := console.readInt("Staff ID: ")
	if err != nil {
		return err
	}
	name, err := console.readLine("Name: ")
	if err != nil {
		return err
	}
	role, err := console.readLine("Role: ")
	if err != nil {
		return err
	}
	salary, err := console.readPrice("Salary: ")
	if err != nil {
		return err
	}
	member, err := hotel.NewStaffMember(id, name, role, salary)
	if err != nil {
		return err
	}
	if err := console.service.AddStaff(ctx, member); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Staff added.")
	return nil
}

func (console *Console) printStaff() {
	staff := console.service.Staff()
	if len(staff) == 0 {
		fmt.Fprintln(console.out, "No staff.")
		return
	}
	fmt.Fprintf(console.out, "%-6s %-20s %-16s %s\n", "ID", "Name", "Role", "Salary")
	for _, member := range staff {
		fmt.Fprintf(console.out, "%-6d %-20s %-16s %.2f\n", member.ID, member.Name, member.Role, member.Salary.Float64())
	}
}

func (console *Console) removeStaff(ctx context.Context) error {
	id, err := console.readInt("Staff ID to remove: ")
	if err != nil {
		return err
	}
	if err := console.service.RemoveStaff(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(console.out, "Staff removed.")
	return nil
}

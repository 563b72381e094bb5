package console

import (
	"context"
	"fmt"

	"meditrack/internal/converter"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/dateutil"

	"github.com/shopspring/decimal"
)

func (c *Console) appointmentMenu(ctx context.Context) error {
	return c.runMenu(ctx, "Appointment & Billing", "Back", []menuItem{
		{"1", "Create appointment", c.createAppointment},
		{"2", "View all appointments", c.listAppointments},
		{"3", "Cancel appointment", c.cancelAppointment},
		{"4", "Generate bill", c.generateBill},
		{"5", "Generate discounted bill", c.generateDiscountedBill},
	})
}

func (c *Console) createAppointment(ctx context.Context) error {
	patientID, err := c.readLine("Enter patient ID: ")
	if err != nil {
		return err
	}
	if _, err := c.patientUsecase.GetPatient(ctx, patientID); err != nil {
		c.printError(err)
		return nil
	}

	doctorID, err := c.readLine("Enter doctor ID: ")
	if err != nil {
		return err
	}
	if _, err := c.doctorUsecase.GetDoctor(ctx, doctorID); err != nil {
		c.printError(err)
		return nil
	}

	return c.bookAppointment(ctx, patientID, doctorID)
}

// bookAppointment asks for the date and creates the appointment
func (c *Console) bookAppointment(ctx context.Context, patientID, doctorID string) error {
	value, err := c.readLine("Enter appointment date/time (yyyy-MM-dd HH:mm): ")
	if err != nil {
		return err
	}
	dateTime, parseErr := dateutil.Parse(value)
	if parseErr != nil {
		c.printf("Error: %v\n", parseErr)
		return nil
	}

	appointment, err := c.appointmentUsecase.CreateAppointment(ctx, patientID, doctorID, dateTime)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Created appointment: %s\n", c.formatAppointment(ctx, appointment))
	return nil
}

func (c *Console) listAppointments(ctx context.Context) error {
	appointments := c.appointmentUsecase.GetAllAppointments(ctx)
	if len(appointments) == 0 {
		c.println("No appointments found.")
		return nil
	}
	for _, a := range appointments {
		c.println(c.formatAppointment(ctx, a))
	}
	return nil
}

func (c *Console) cancelAppointment(ctx context.Context) error {
	id, err := c.readLine("Enter appointment ID: ")
	if err != nil {
		return err
	}
	if err := c.appointmentUsecase.CancelAppointment(ctx, id); err != nil {
		c.printError(err)
		return nil
	}
	c.println("Appointment cancelled.")
	return nil
}

func (c *Console) generateBill(ctx context.Context) error {
	id, err := c.readLine("Enter appointment ID: ")
	if err != nil {
		return err
	}
	bill, err := c.appointmentUsecase.GenerateBill(ctx, id)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printBill(bill)
	return nil
}

func (c *Console) generateDiscountedBill(ctx context.Context) error {
	id, err := c.readLine("Enter appointment ID: ")
	if err != nil {
		return err
	}
	rate, ok, err := c.readDecimal("Discount rate (e.g. 0.10 for 10%): ")
	if err != nil || !ok {
		return err
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		c.println("Discount rate must be at least 0 and below 1.")
		return nil
	}

	bill, err := c.appointmentUsecase.GenerateDiscountedBill(ctx, id, rate)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printBill(bill)
	return nil
}

func (c *Console) printBill(bill *entity.Bill) {
	b := converter.BillToResponse(bill)
	summary := converter.BillSummaryToResponse(bill.ToSummary())
	c.printf("Bill %s for appointment %s\n", b.BillID, b.AppointmentID)
	c.printf("Base amount: %s\n", b.BaseAmount)
	c.printf("Bill total: %s\n", b.TotalAmount)
	c.printf("Summary: BillSummary{billId=%s, totalAmount=%s}\n", summary.BillID, summary.TotalAmount)
}

// formatAppointment resolves patient and doctor names; removed ones show as N/A
func (c *Console) formatAppointment(ctx context.Context, appointment *entity.Appointment) string {
	patient, _ := c.patientUsecase.GetPatient(ctx, appointment.PatientID)
	doctor, _ := c.doctorUsecase.GetDoctor(ctx, appointment.DoctorID)

	a := converter.AppointmentToResponse(appointment, patient, doctor)
	return fmt.Sprintf("%s | %s | patient %s (%s) | doctor %s (%s) | %s",
		a.ID, a.DateTime, a.PatientName, a.PatientID, a.DoctorName, a.DoctorID, a.Status)
}

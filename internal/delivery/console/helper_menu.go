package console

import (
	"context"

	"meditrack/internal/converter"
	"meditrack/internal/domain/entity"
)

func (c *Console) helperMenu(ctx context.Context) error {
	return c.runMenu(ctx, "Helper", "Back", []menuItem{
		{"1", "Recommend doctor by symptom", c.recommendDoctor},
		{"2", "Appointment analytics (per doctor)", c.showAppointmentAnalytics},
	})
}

// recommendDoctor suggests doctors for a described symptom and can book one
func (c *Console) recommendDoctor(ctx context.Context) error {
	patientID, err := c.readLine("Enter patient ID: ")
	if err != nil {
		return err
	}
	if _, err := c.patientUsecase.GetPatient(ctx, patientID); err != nil {
		c.printError(err)
		return nil
	}

	symptoms, err := c.readLine("Describe symptoms: ")
	if err != nil {
		return err
	}
	specialization, ok := c.recommendationService.RecommendSpecialization(symptoms)
	if !ok {
		c.println("No symptoms given.")
		return nil
	}
	c.printf("Suggested specialization: %s\n", specialization)

	recommended := c.recommendationService.RecommendDoctors(symptoms, c.doctorUsecase.GetAllDoctors(ctx))
	if len(recommended) == 0 {
		c.println("No suitable doctors found.")
		return nil
	}

	c.println("Recommended doctors:")
	for _, d := range recommended {
		c.printf("%s - %s (%s)\n", d.ID, d.Name, d.Specialization)
	}

	doctorID, err := c.readLine("Enter doctor ID to book appointment (or blank to cancel): ")
	if err != nil || doctorID == "" {
		return err
	}
	if _, err := c.doctorUsecase.GetDoctor(ctx, doctorID); err != nil {
		c.printError(err)
		return nil
	}

	return c.bookAppointment(ctx, patientID, doctorID)
}

func (c *Console) showAppointmentAnalytics(ctx context.Context) error {
	doctors := make(map[string]*entity.Doctor)
	for _, d := range c.doctorUsecase.GetAllDoctors(ctx) {
		doctors[d.ID] = d
	}

	rows := converter.AppointmentCountsToResponses(c.appointmentUsecase.GetAppointmentsPerDoctor(ctx), doctors)

	c.println("\n=== Appointments per Doctor ===")
	if len(rows) == 0 {
		c.println("No appointments yet.")
		return nil
	}
	for _, row := range rows {
		c.printf("%s (%s): %d appointments\n", row.DoctorName, row.DoctorID, row.Count)
	}
	return nil
}

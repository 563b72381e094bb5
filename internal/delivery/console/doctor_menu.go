package console

import (
	"context"
	"fmt"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func (c *Console) doctorMenu(ctx context.Context) error {
	return c.runMenu(ctx, "Doctor Management", "Back", []menuItem{
		{"1", "Add doctor", c.addDoctor},
		{"2", "View all doctors", c.listDoctors},
		{"3", "Filter by specialization", c.filterDoctors},
		{"4", "Fee statistics", c.showFeeStatistics},
		{"5", "Delete doctor", c.deleteDoctor},
		{"6", "Update specialization or fee", c.updateDoctor},
	})
}

func (c *Console) addDoctor(ctx context.Context) error {
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	age, ok, err := c.readInt("Age: ")
	if err != nil || !ok {
		return err
	}
	phone, err := c.readLine("Phone: ")
	if err != nil {
		return err
	}
	specialization, ok, err := c.readSpecialization()
	if err != nil || !ok {
		return err
	}
	fee, ok, err := c.readDecimal("Consultation fee: ")
	if err != nil || !ok {
		return err
	}

	req := &dto.CreateDoctorRequest{
		Name:            name,
		Age:             age,
		Phone:           phone,
		Specialization:  specialization,
		ConsultationFee: fee,
	}
	if err := c.validator.Validate(req); err != nil {
		c.printValidation(err)
		return nil
	}

	doctor, err := c.doctorUsecase.CreateDoctor(ctx, req)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Created doctor: %s\n", formatDoctor(doctor))
	return nil
}

func (c *Console) listDoctors(ctx context.Context) error {
	c.printDoctors(c.doctorUsecase.GetAllDoctors(ctx))
	return nil
}

func (c *Console) filterDoctors(ctx context.Context) error {
	specialization, ok, err := c.readSpecialization()
	if err != nil || !ok {
		return err
	}
	c.printDoctors(c.doctorUsecase.FilterBySpecialization(ctx, specialization))
	return nil
}

func (c *Console) showFeeStatistics(ctx context.Context) error {
	stats := converter.FeeStatisticsToResponse(c.doctorUsecase.FeeStatistics(ctx))
	c.println("Doctor fee statistics:")
	c.printf("Count: %d\n", stats.Count)
	c.printf("Min: %s\n", stats.Min)
	c.printf("Max: %s\n", stats.Max)
	c.printf("Average: %s\n", stats.Average)
	return nil
}

func (c *Console) deleteDoctor(ctx context.Context) error {
	id, err := c.readLine("Enter ID to delete: ")
	if err != nil {
		return err
	}
	if c.doctorUsecase.DeleteDoctor(ctx, id) {
		c.println("Deleted.")
	} else {
		c.println("Doctor not found.")
	}
	return nil
}

func (c *Console) updateDoctor(ctx context.Context) error {
	id, err := c.readLine("Enter doctor ID: ")
	if err != nil {
		return err
	}
	if _, err := c.doctorUsecase.GetDoctor(ctx, id); err != nil {
		c.printError(err)
		return nil
	}

	req := &dto.UpdateDoctorRequest{}

	value, err := c.readLine("New specialization (blank to keep): ")
	if err != nil {
		return err
	}
	if value != "" {
		specialization, parseErr := entity.ParseSpecialization(value)
		if parseErr != nil {
			c.printf("Error: %v\n", parseErr)
			return nil
		}
		req.Specialization = &specialization
	}

	value, err = c.readLine("New consultation fee (blank to keep): ")
	if err != nil {
		return err
	}
	if value != "" {
		fee, parseErr := decimal.NewFromString(value)
		if parseErr != nil {
			c.printf("Invalid amount: %q\n", value)
			return nil
		}
		req.ConsultationFee = &fee
	}

	doctor, err := c.doctorUsecase.UpdateDoctor(ctx, id, req)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Updated doctor: %s\n", formatDoctor(doctor))
	return nil
}

func (c *Console) readSpecialization() (entity.Specialization, bool, error) {
	c.println("Specialization options:")
	for _, s := range entity.Specializations() {
		c.printf("- %s\n", s)
	}
	value, err := c.readLine("Enter specialization: ")
	if err != nil {
		return "", false, err
	}
	specialization, parseErr := entity.ParseSpecialization(value)
	if parseErr != nil {
		c.printf("Error: %v\n", parseErr)
		return "", false, nil
	}
	return specialization, true, nil
}

func (c *Console) readDecimal(prompt string) (decimal.Decimal, bool, error) {
	value, err := c.readLine(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, parseErr := decimal.NewFromString(value)
	if parseErr != nil {
		c.printf("Invalid amount: %q\n", value)
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

func (c *Console) printDoctors(doctors []*entity.Doctor) {
	if len(doctors) == 0 {
		c.println("No doctors found.")
		return
	}
	for _, d := range doctors {
		c.println(formatDoctor(d))
	}
}

func formatDoctor(doctor *entity.Doctor) string {
	d := converter.DoctorToResponse(doctor)
	return fmt.Sprintf("%s | %s | %s | age %d | %s | fee %s",
		d.ID, d.Name, d.Specialization, d.Age, d.Phone, d.ConsultationFee)
}

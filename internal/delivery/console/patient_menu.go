package console

import (
	"context"
	"fmt"
	"strings"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
)

func (c *Console) patientMenu(ctx context.Context) error {
	return c.runMenu(ctx, "Patient Management", "Back", []menuItem{
		{"1", "Add patient", c.addPatient},
		{"2", "View all patients", c.listPatients},
		{"3", "Search patient by ID", c.findPatientByID},
		{"4", "Search patient by name", c.findPatientsByName},
		{"5", "Search patient by age", c.findPatientsByAge},
		{"6", "Delete patient", c.deletePatient},
		{"7", "Add medical history entry", c.addMedicalHistory},
	})
}

func (c *Console) addPatient(ctx context.Context) error {
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

	req := &dto.CreatePatientRequest{Name: name, Age: age, Phone: phone}
	if err := c.validator.Validate(req); err != nil {
		c.printValidation(err)
		return nil
	}

	patient, err := c.patientUsecase.CreatePatient(ctx, req)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Created patient: %s\n", formatPatient(patient))
	return nil
}

func (c *Console) listPatients(ctx context.Context) error {
	c.printPatients(c.patientUsecase.GetAllPatients(ctx))
	return nil
}

func (c *Console) findPatientByID(ctx context.Context) error {
	id, err := c.readLine("Enter ID: ")
	if err != nil {
		return err
	}
	patient, err := c.patientUsecase.GetPatient(ctx, id)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.println(formatPatient(patient))
	return nil
}

func (c *Console) findPatientsByName(ctx context.Context) error {
	name, err := c.readLine("Enter name: ")
	if err != nil {
		return err
	}
	c.printPatients(c.patientUsecase.SearchByName(ctx, name))
	return nil
}

func (c *Console) findPatientsByAge(ctx context.Context) error {
	age, ok, err := c.readInt("Enter age: ")
	if err != nil || !ok {
		return err
	}
	c.printPatients(c.patientUsecase.SearchByAge(ctx, age))
	return nil
}

func (c *Console) deletePatient(ctx context.Context) error {
	id, err := c.readLine("Enter ID to delete: ")
	if err != nil {
		return err
	}
	if c.patientUsecase.DeletePatient(ctx, id) {
		c.println("Deleted.")
	} else {
		c.println("Patient not found.")
	}
	return nil
}

func (c *Console) addMedicalHistory(ctx context.Context) error {
	id, err := c.readLine("Enter patient ID: ")
	if err != nil {
		return err
	}
	entry, err := c.readLine("History entry: ")
	if err != nil {
		return err
	}

	patient, err := c.patientUsecase.AddMedicalHistory(ctx, id, entry)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Updated patient: %s\n", formatPatient(patient))
	return nil
}

func (c *Console) printPatients(patients []*entity.Patient) {
	if len(patients) == 0 {
		c.println("No patients found.")
		return
	}
	for _, p := range patients {
		c.println(formatPatient(p))
	}
}

func formatPatient(patient *entity.Patient) string {
	p := converter.PatientToResponse(patient)
	line := fmt.Sprintf("%s | %s | age %d | %s", p.ID, p.Name, p.Age, p.Phone)
	if len(p.MedicalHistory) > 0 {
		line += " | history: " + strings.Join(p.MedicalHistory, "; ")
	}
	return line
}

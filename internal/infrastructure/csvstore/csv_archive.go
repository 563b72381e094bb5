package csvstore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/pkg/dateutil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	PatientsFile     = "patients.csv"
	DoctorsFile      = "doctors.csv"
	AppointmentsFile = "appointments.csv"
)

const (
	patientFields     = 4
	doctorFields      = 6
	appointmentFields = 5
)

type csvArchive struct {
	dir string
	log *logrus.Logger
}

// NewCSVArchive stores each collection as a headerless comma separated file
// in dir. The directory is created on the first save.
func NewCSVArchive(dir string, log *logrus.Logger) repository.ClinicArchive {
	return &csvArchive{
		dir: dir,
		log: log,
	}
}

func (a *csvArchive) LoadPatients(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := a.readRecords(PatientsFile, patientFields, func(fields []string) error {
		age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("invalid age %q: %w", fields[2], err)
		}
		patients = append(patients, &entity.Patient{
			ID:    strings.TrimSpace(fields[0]),
			Name:  fields[1],
			Age:   age,
			Phone: fields[3],
		})
		return nil
	})
	return patients, err
}

func (a *csvArchive) LoadDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := a.readRecords(DoctorsFile, doctorFields, func(fields []string) error {
		age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("invalid age %q: %w", fields[2], err)
		}
		specialization, err := entity.ParseSpecialization(fields[4])
		if err != nil {
			return err
		}
		fee, err := decimal.NewFromString(strings.TrimSpace(fields[5]))
		if err != nil {
			return fmt.Errorf("invalid fee %q: %w", fields[5], err)
		}
		doctors = append(doctors, &entity.Doctor{
			ID:              strings.TrimSpace(fields[0]),
			Name:            fields[1],
			Age:             age,
			Phone:           fields[3],
			Specialization:  specialization,
			ConsultationFee: fee,
		})
		return nil
	})
	return doctors, err
}

func (a *csvArchive) LoadAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	err := a.readRecords(AppointmentsFile, appointmentFields, func(fields []string) error {
		dateTime, err := dateutil.Parse(fields[3])
		if err != nil {
			return err
		}
		status, err := entity.ParseAppointmentStatus(fields[4])
		if err != nil {
			return err
		}
		appointments = append(appointments, &entity.Appointment{
			ID:        strings.TrimSpace(fields[0]),
			PatientID: strings.TrimSpace(fields[1]),
			DoctorID:  strings.TrimSpace(fields[2]),
			DateTime:  dateTime,
			Status:    status,
		})
		return nil
	})
	return appointments, err
}

func (a *csvArchive) SavePatients(ctx context.Context, patients []*entity.Patient) error {
	records := make([][]string, 0, len(patients))
	for _, p := range patients {
		records = append(records, []string{p.ID, p.Name, strconv.Itoa(p.Age), p.Phone})
	}
	return a.writeRecords(PatientsFile, records)
}

func (a *csvArchive) SaveDoctors(ctx context.Context, doctors []*entity.Doctor) error {
	records := make([][]string, 0, len(doctors))
	for _, d := range doctors {
		records = append(records, []string{
			d.ID,
			d.Name,
			strconv.Itoa(d.Age),
			d.Phone,
			d.Specialization.String(),
			d.ConsultationFee.String(),
		})
	}
	return a.writeRecords(DoctorsFile, records)
}

func (a *csvArchive) SaveAppointments(ctx context.Context, appointments []*entity.Appointment) error {
	records := make([][]string, 0, len(appointments))
	for _, ap := range appointments {
		records = append(records, []string{
			ap.ID,
			ap.PatientID,
			ap.DoctorID,
			dateutil.Format(ap.DateTime),
			string(ap.Status),
		})
	}
	return a.writeRecords(AppointmentsFile, records)
}

// readRecords calls parse for every row with at least minFields fields.
// Short rows and rows parse rejects are skipped. A missing file reads as empty.
func (a *csvArchive) readRecords(name string, minFields int, parse func(fields []string) error) error {
	path := filepath.Join(a.dir, name)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.Debugf("No data file at %s", path)
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRecord(line)
		if len(fields) < minFields {
			a.log.Debugf("Skipping %s:%d: expected %d fields, got %d", name, lineNo, minFields, len(fields))
			continue
		}
		if err := parse(fields); err != nil {
			a.log.Warnf("Skipping %s:%d: %+v", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// writeRecords replaces the file with one line per record
func (a *csvArchive) writeRecords(name string, records [][]string) (err error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", a.dir, err)
	}

	path := filepath.Join(a.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, record := range records {
		if _, err := w.WriteString(joinRecord(record) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	a.log.Debugf("Wrote %d records to %s", len(records), path)
	return nil
}

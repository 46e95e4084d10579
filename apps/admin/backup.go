package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core/student"
	"github.com/jmstudio/fitmanage/core/teacher"
)

// backupPayload is the full-roster dump exchanged on export and import.
type backupPayload struct {
	Students []student.Student `json:"students"`
	Teachers []teacher.Teacher `json:"teachers"`
}

func (cli *commandLine) export(out string) error {
	students, err := cli.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	teachers, err := cli.teacherSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	if students == nil {
		students = []student.Student{}
	}
	if teachers == nil {
		teachers = []teacher.Teacher{}
	}

	data, err := json.MarshalIndent(backupPayload{Students: students, Teachers: teachers}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing backup")
	}
	return errors.Wrap(os.WriteFile(out, data, 0o644), "writing backup")
}

func (cli *commandLine) importBackup(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "reading backup")
	}

	var payload backupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.Wrap(err, "parsing backup")
	}
	if payload.Students == nil || payload.Teachers == nil {
		return errors.New("both students and teachers collections are required")
	}
	for _, s := range payload.Students {
		if s.ID == "" || s.Name == "" {
			return errors.New("every student needs an id and a name")
		}
	}
	for _, t := range payload.Teachers {
		if t.ID == "" || t.Name == "" {
			return errors.New("every teacher needs an id and a name")
		}
	}

	if err := cli.studentSvc.ReplaceAll(payload.Students); err != nil {
		return errors.Wrap(err, "replacing students")
	}
	return errors.Wrap(cli.teacherSvc.ReplaceAll(payload.Teachers), "replacing teachers")
}

package main

import "github.com/gostonefire/patientstore/record"

var samplePatients = []record.Fields{
	{ID: "12345678", Name: "Alice Johnson", Age: 34, Diagnosis: "Hypertension", Gender: 'F', Disability: 0, Specialty: "Cardiology", AppointmentDate: "2023-02-15"},
	{ID: "87654321", Name: "Bob Smith", Age: 47, Diagnosis: "Diabetes Type 2", Gender: 'M', Disability: 1, Specialty: "Endocrinology", AppointmentDate: "2023-03-10"},
	{ID: "11223344", Name: "Carla Gomez", Age: 29, Diagnosis: "Asthma", Gender: 'F', Disability: 0, Specialty: "Pulmonology", AppointmentDate: "2023-04-22"},
	{ID: "44332211", Name: "Daniel Lee", Age: 52, Diagnosis: "Coronary Artery Disease", Gender: 'M', Disability: 1, Specialty: "Cardiology", AppointmentDate: "2023-05-05"},
	{ID: "55667788", Name: "Emily Chen", Age: 41, Diagnosis: "Hypothyroidism", Gender: 'F', Disability: 0, Specialty: "Endocrinology", AppointmentDate: "2023-06-18"},
	{ID: "88776655", Name: "Frank Miller", Age: 65, Diagnosis: "COPD", Gender: 'M', Disability: 1, Specialty: "Pulmonology", AppointmentDate: "2023-07-12"},
	{ID: "33445566", Name: "Grace Kim", Age: 23, Diagnosis: "Migraine", Gender: 'F', Disability: 0, Specialty: "Neurology", AppointmentDate: "2023-08-03"},
	{ID: "66554433", Name: "Henry Patel", Age: 38, Diagnosis: "Epilepsy", Gender: 'M', Disability: 0, Specialty: "Neurology", AppointmentDate: "2023-09-27"},
	{ID: "77889900", Name: "Isabella Rossi", Age: 56, Diagnosis: "Osteoarthritis", Gender: 'F', Disability: 1, Specialty: "Rheumatology", AppointmentDate: "2023-10-14"},
	{ID: "00998877", Name: "Jack Wilson", Age: 44, Diagnosis: "Chronic Kidney Disease", Gender: 'M', Disability: 0, Specialty: "Nephrology", AppointmentDate: "2023-11-21"},
	{ID: "22334455", Name: "Karen Davis", Age: 31, Diagnosis: "Depression", Gender: 'F', Disability: 0, Specialty: "Psychiatry", AppointmentDate: "2023-12-09"},
	{ID: "55443322", Name: "Luis Martinez", Age: 27, Diagnosis: "Ulcerative Colitis", Gender: 'M', Disability: 1, Specialty: "Gastroenterology", AppointmentDate: "2024-01-16"},
	{ID: "66778899", Name: "Maria Silva", Age: 49, Diagnosis: "Breast Cancer", Gender: 'F', Disability: 0, Specialty: "Oncology", AppointmentDate: "2024-02-28"},
	{ID: "99887766", Name: "Noah Brown", Age: 36, Diagnosis: "Multiple Sclerosis", Gender: 'M', Disability: 1, Specialty: "Neurology", AppointmentDate: "2024-03-19"},
	{ID: "13572468", Name: "Olivia Clark", Age: 58, Diagnosis: "Glaucoma", Gender: 'F', Disability: 0, Specialty: "Ophthalmology", AppointmentDate: "2024-04-07"},
}

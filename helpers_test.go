//go:build integration || stress

package patientstore

import (
	"testing"

	"github.com/gostonefire/patientstore/crt"
	"github.com/gostonefire/patientstore/record"
	"github.com/stretchr/testify/require"
)

type TestCaseCRT struct {
	crtName string
	crt     int
}

var allCRTs = []TestCaseCRT{
	{crtName: "LastWriteWins", crt: crt.LastWriteWins},
	{crtName: "SeparateChaining", crt: crt.SeparateChaining},
	{crtName: "LinearProbing", crt: crt.LinearProbing},
}

func testConf(t *testing.T, technique int) Conf {
	storeConf := DefaultConf()
	storeConf.Dir = t.TempDir()
	storeConf.CollisionResolutionTechnique = technique

	return storeConf
}

func newTestStore(t *testing.T, technique int) *Store {
	store, err := New(testConf(t, technique))
	require.NoError(t, err, "create store")

	return store
}

func newPatient(t *testing.T, id, name string) record.Record {
	r, err := record.New(record.Fields{
		ID:              id,
		Name:            name,
		Age:             40,
		Diagnosis:       "Asthma",
		Gender:          'M',
		Disability:      0,
		Specialty:       "Pulmonology",
		AppointmentDate: "2023-03-10",
	})
	require.NoError(t, err, "construct record %s", id)

	return r
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gostonefire/patientstore"
	"github.com/gostonefire/patientstore/crt"
	"github.com/gostonefire/patientstore/internal/observability"
	"github.com/gostonefire/patientstore/query"
	"github.com/gostonefire/patientstore/record"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"
)

func main() {
	dir := flag.String("dir", patientstore.DefaultConf().Dir, "directory holding the record and index files")
	technique := flag.String("crt", crt.Name(crt.LastWriteWins), "collision resolution technique, LastWriteWins, SeparateChaining or LinearProbing")
	seed := flag.Bool("seed", false, "replace the files with the sample patients before opening")
	dump := flag.Bool("dump", false, "dump every record after opening")
	ci := flag.String("ci", "", "look up a single patient by CI, in memory and in the record file")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	observability.UseConsoleWriter(os.Stderr)
	if *verbose {
		observability.SetLoggingLevel(zerolog.DebugLevel)
	} else {
		observability.SetLoggingLevel(zerolog.InfoLevel)
	}

	storeConf := patientstore.DefaultConf()
	storeConf.Dir = *dir

	var err error
	storeConf.CollisionResolutionTechnique, err = crt.Parse(*technique)
	if err != nil {
		log.Fatal().Err(err).Msg("cli: invalid flag.")
	}

	if *seed {
		if err = seedStore(storeConf); err != nil {
			log.Fatal().Err(err).Msg("cli: failed to seed sample patients.")
		}
	}

	store, info, err := patientstore.Open(storeConf)
	if err != nil {
		log.Fatal().Err(err).Msg("cli: failed to open store, run with -seed to create the files.")
	}

	if *ci != "" {
		lookup(store, *ci)
	}

	records := store.Records()
	if *dump {
		litter.Dump(records)
	}

	printReport(info, records)
}

// seedStore - Writes the sample patients to fresh record and index files
func seedStore(storeConf patientstore.Conf) (err error) {
	store, err := patientstore.New(storeConf)
	if err != nil {
		return
	}

	for _, fields := range samplePatients {
		var r record.Record
		r, err = record.New(fields)
		if err != nil {
			log.Warn().Err(err).Str("ci", fields.ID).Msg("cli: skipping invalid sample patient.")
			continue
		}
		if _, err = store.Add(r); err != nil {
			log.Warn().Err(err).Str("ci", fields.ID).Msg("cli: skipping sample patient.")
			continue
		}
	}

	syncInfo, err := store.SyncAll()
	if err != nil {
		return
	}

	log.Info().
		Str("syncId", syncInfo.SyncID.String()).
		Int("records", syncInfo.Records).
		Msg("cli: sample patients seeded.")

	return
}

func lookup(store *patientstore.Store, ci string) {
	r, bucketNo, err := store.Get(ci)
	if err != nil {
		log.Error().Err(err).Str("ci", ci).Msg("cli: lookup failed.")
		return
	}
	fmt.Printf("bucket %d\n", bucketNo)
	litter.Dump(r)

	fromFile, _, err := store.GetFromFile(ci)
	if err != nil {
		log.Error().Err(err).Str("ci", ci).Msg("cli: lookup in record file failed.")
		return
	}
	if fromFile != r {
		log.Warn().Str("ci", ci).Msg("cli: record file differs from memory.")
	}
}

func printReport(info patientstore.StoreInfo, records []record.Record) {
	fmt.Printf("%d of %d slots in use, %d index entries (%s)\n",
		info.Records, info.Capacity, info.IndexEntries, crt.Name(info.CollisionResolutionTechnique))

	fmt.Printf("%-8s  %-25s  %3s  %-6s  %-16s  %s\n", "CI", "Name", "Age", "Gender", "Specialty", "Appointment")
	for _, r := range records {
		fmt.Printf("%-8s  %-25s  %3d  %-6s  %-16s  %s\n", r.ID, r.Name, r.Age, r.Gender, r.Specialty, r.AppointmentDate)
	}

	fmt.Println()
	fmt.Printf("disabled:    %d\n", len(query.Disabled(records)))
	fmt.Printf("female:      %d\n", len(query.Female(records)))
	fmt.Printf("male:        %d\n", len(query.Male(records)))
	fmt.Printf("under 30:    %d\n", len(query.UnderAge(records, 30)))
	fmt.Printf("neurology:   %d\n", len(query.BySpecialty(records, "Neurology")))
	fmt.Printf("2023-02-15:  %d\n", len(query.ByAppointmentDate(records, "2023-02-15")))
}

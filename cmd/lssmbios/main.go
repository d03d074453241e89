// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lssmbios decodes and displays SMBIOS data.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/digitalocean/go-dmidecode/smbios"
)

var rootCmd = &cobra.Command{
	Use:   "lssmbios",
	Short: "Decode and display SMBIOS data",
	Long: `lssmbios decodes the SMBIOS entry point and structure table of this system,
or of dumps given with --entry-point and --table, and prints one record per
decoded structure.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringP("entry-point", "e", "", "read the entry point from this file instead of the system")
	rootCmd.Flags().StringP("table", "t", "", "read the structure table from this file instead of the system")
	rootCmd.Flags().StringP("format", "f", formatJSON, fmt.Sprintf("output format, one of %s, %s or %s", formatJSON, formatYAML, formatTable))
	rootCmd.Flags().BoolP("debug", "d", false, "print debug logs too")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(cmd *cobra.Command, _ []string) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("invalid log debug mode input '%v' with error: %w", debug, err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format input '%s' with error: %w", format, err)
	}
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("format must be one of %s, %s or %s, not '%s'", formatJSON, formatYAML, formatTable, format)
	}

	entryPath, err := cmd.Flags().GetString("entry-point")
	if err != nil {
		return fmt.Errorf("invalid entry point path '%s'", entryPath)
	}
	tablePath, err := cmd.Flags().GetString("table")
	if err != nil {
		return fmt.Errorf("invalid table path '%s'", tablePath)
	}

	snap, err := snapshot(entryPath, tablePath)
	if err != nil {
		return err
	}

	s := smbios.NewSession(snap.EntryPoint, snap.Table, smbios.WithLogger(log.Logger))
	records := s.Decode()
	if err := s.Err(); err != nil {
		return fmt.Errorf("failed to decode SMBIOS data: %w", err)
	}

	if ep := s.EntryPoint(); ep != nil {
		major, minor, rev := ep.Version()
		addr, size := ep.Table()
		log.Info().Msgf("SMBIOS %d.%d.%d - table: address: %#x, size: %d", major, minor, rev, addr, size)
	}

	return render(cmd.OutOrStdout(), records)
}

// snapshot reads SMBIOS data from the given files, or from the system when
// neither is set.
func snapshot(entryPath, tablePath string) (*smbios.Snapshot, error) {
	if entryPath == "" && tablePath == "" {
		snap, err := smbios.Stream()
		if err != nil {
			return nil, fmt.Errorf("failed to read SMBIOS data: %w", err)
		}
		return snap, nil
	}

	return smbios.ReadSnapshot(entryPath, tablePath)
}

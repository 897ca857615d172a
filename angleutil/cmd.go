/*
Copyright © 2018 the InMAP authors.
This file is part of the InMAP angle library.

This library is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This library is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this library.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package angleutil provides the command-line interface to the angle
// library.
package angleutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/angle"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to the commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format specifies the angular notation of the input values:
              one of rad, deg, gon, mil, dms, or dm. The tuple notations
              take colon-separated components, e.g. 10:30:0.`,
			shorthand:  "f",
			defaultVal: "deg",
			flagsets: []*pflag.FlagSet{compassCmd.Flags(), meanCmd.Flags(),
				vectorCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from specifies the angular notation the input values are in.`,
			defaultVal: "deg",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to specifies the angular notation to convert to.`,
			defaultVal: "rad",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "azimuth",
			usage: `
              azimuth treats the values as geographic azimuths measured
              clockwise from north, normalizing results to [0°, 360°)
              instead of (−180°, 180°].`,
			shorthand:  "a",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), meanCmd.Flags()},
		},
		{
			name: "weights",
			usage: `
              weights gives one weight per value for the circular mean.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{meanCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ANGLE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(compassCmd)
	Root.AddCommand(meanCmd)
	Root.AddCommand(vectorCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("angle: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// inputFormat reads and validates the named format option.
func inputFormat(name string) (angle.Format, error) {
	return angle.ParseFormat(Cfg.GetString(name))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "angle",
	Short: "A calculator for angles and azimuths.",
	Long: `angle converts directional quantities between angular notations,
averages them, and classifies them into compass sectors. Angles are
measured counterclockwise from east and azimuths clockwise from north;
the two conventions are complementary with respect to 90 degrees.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'ANGLE_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of the angle library.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("angle v%s\n", angle.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert [values]",
	Short: "Convert values between angular notations.",
	Long: `convert reads each value in the notation given by --from, converts it
to the notation given by --to, and prints one result per line. Results
are normalized to the canonical domain: (−180°, 180°] for angles, or
[0°, 360°) with --azimuth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := inputFormat("from")
		if err != nil {
			return err
		}
		to, err := inputFormat("to")
		if err != nil {
			return err
		}
		out, err := Convert(args, from, to, Cfg.GetBool("azimuth"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{"from": from, "to": to}).
			Debugf("converted %d values", len(out))
		for _, s := range out {
			cmd.Println(s)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var compassCmd = &cobra.Command{
	Use:   "compass [azimuths]",
	Short: "Classify azimuths into compass sectors.",
	Long: `compass maps each azimuth to one of the sixteen named 22.5-degree
compass sectors (N, NNE, NE, and so on), printing one sector per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := inputFormat("format")
		if err != nil {
			return err
		}
		out, err := Compass(args, f)
		if err != nil {
			return err
		}
		for _, s := range out {
			cmd.Println(s)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var meanCmd = &cobra.Command{
	Use:   "mean [values]",
	Short: "Compute the circular mean of a set of directions.",
	Long: `mean averages the given directions by vector averaging, the only
averaging that is correct across the 0/360 wraparound (the mean of 350
and 10 degrees is 0, not 180), and prints the result in degrees.
Weights, if given with --weights, must match the values one to one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := inputFormat("format")
		if err != nil {
			return err
		}
		m, err := Mean(args, Cfg.GetStringSlice("weights"), f, Cfg.GetBool("azimuth"))
		if err != nil {
			return err
		}
		cmd.Printf("%g\n", m)
		return nil
	},
	DisableAutoGenTag: true,
}

var vectorCmd = &cobra.Command{
	Use:   "vector [values]",
	Short: "Project directions onto unit vectors.",
	Long: `vector prints the (x, y) components of the unit direction vector of
each value, one vector per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := inputFormat("format")
		if err != nil {
			return err
		}
		out, err := Vectors(args, f)
		if err != nil {
			return err
		}
		for _, p := range out {
			cmd.Printf("%g %g\n", p.X, p.Y)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/race"
	"github.com/a-bouts/regatta/stack"
	"github.com/a-bouts/regatta/store"
	"github.com/a-bouts/regatta/wind"
)

const usage = `usage: regatta [flags] command [args]

commands:
  new [template.yaml]
  list
  layouts
  show
  delete
  targets [planar]
  drop LAT LON
  pull LAT LON
  finish LAT LON | finish clear
  wind DIRECTION SPEED GUSTS [UNIX_TIME]
  layout SHAPE [START [FINISH [WIND [LEE]]]]
  set MEASUREMENT METERS
  boats N
  lock DIRECTION
  unlock
  undo
  redo
  next LAT LON
`

var errUsage = errors.New("bad arguments")

type cli struct {
	store       *store.Store
	catalog     *layout.Catalog
	course      string
	closeEnough latlon.Distance
	out         io.Writer
}

func main() {
	fs := flag.NewFlagSet("regatta", flag.ExitOnError)
	var (
		storeDir    = fs.String("store-dir", "courses", "directory holding the courses")
		course      = fs.String("course", "", "id of the course, defaults to the last modified")
		logLevel    = fs.String("log-level", "info", "log level")
		logFile     = fs.String("log-file", "", "log to this file instead of stderr")
		cpuprofile  = fs.Bool("cpuprofile", false, "write a cpu profile")
		closeEnough = fs.Float64("close-enough", 10, "meters between a mark and its target for the target to be filled")
		_           = fs.String("config", "", "config file")
	)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage, "\nflags:\n")
		fs.PrintDefaults()
	}
	err := parseFlags(fs, os.Args[1:])

	if err := initLogger(*logLevel, *logFile); err != nil {
		log.WithError(err).Fatal("Invalid logging configuration")
	}
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	if *cpuprofile {
		defer profile.Start().Stop()
	}

	catalog := layout.NewCatalog()
	s, err := store.New(*storeDir, catalog)
	if err != nil {
		log.WithError(err).Fatalf("Cannot open store %s", *storeDir)
	}

	c := cli{store: s, catalog: catalog, course: *course, closeEnough: *closeEnough, out: os.Stdout}
	if err := c.run(fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

// parseFlags reads flags from args, then the environment, then the file
// named by -config.
func parseFlags(fs *flag.FlagSet, args []string) error {
	return ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser))
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) courseID() (uuid.UUID, error) {
	if c.course != "" {
		return uuid.Parse(c.course)
	}
	entries, err := c.store.List()
	if err != nil {
		return uuid.Nil, err
	}
	if len(entries) == 0 {
		return uuid.Nil, fmt.Errorf("%w: create one with new", store.ErrNotFound)
	}
	return entries[0].ID, nil
}

func (c *cli) load() (*stack.Local, error) {
	id, err := c.courseID()
	if err != nil {
		return nil, err
	}
	return c.store.Load(id)
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	log.WithFields(log.Fields{"command": cmd, "args": args}).Debug("Running")

	switch cmd {
	case "new":
		return c.create(args)
	case "list":
		entries, err := c.store.List()
		if err != nil {
			return err
		}
		return c.print(entries)
	case "layouts":
		return c.print(c.layouts())
	}

	l, err := c.load()
	if err != nil {
		return err
	}

	switch cmd {
	case "show":
		return c.print(newView(l))

	case "delete":
		return c.store.Delete(l.Current().Course.ID)

	case "targets":
		if len(args) > 0 && args[0] == "planar" {
			var targets []layout.TargetLocation[latlon.Point]
			race.PositionTargetsFrom(l.Current(), latlon.Point{}, func(role layout.MarkRole, p latlon.Point) {
				targets = append(targets, layout.TargetLocation[latlon.Point]{Role: role, Location: p})
			}, nil)
			return c.print(targets)
		}
		return c.print(l.Current().Targets())

	case "next":
		at, err := parseLatLon(args)
		if err != nil {
			return err
		}
		role, ok := l.Current().NextTarget(at, c.closeEnough, nil)
		if !ok {
			return c.print(map[string]any{"role": nil})
		}
		target, _ := l.Current().TargetCoordinate(role)
		return c.print(race.TargetLocation{Role: role, Location: target})

	case "wind":
		w, err := parseWind(args)
		if err != nil {
			return err
		}
		if !l.AddWind(w) {
			log.WithField("startTime", w.StartTime).Warn("Ignoring wind older than the latest")
		}
		return c.save(l)
	}

	command, err := c.command(cmd, args)
	if err != nil {
		return err
	}
	if err := l.Perform(command); err != nil {
		return err
	}
	return c.save(l)
}

func (c *cli) save(l *stack.Local) error {
	if err := c.store.Save(l); err != nil {
		return err
	}
	return c.print(l.Remote().Record())
}

func (c *cli) create(args []string) error {
	course := race.NewCourse()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		t, err := race.LoadTemplate(f)
		if err != nil {
			return err
		}
		course = t.Course()
	}
	log.WithFields(log.Fields{"course": course.ID, "name": course.Name}).Info("Creating course")
	return c.save(stack.NewLocal(course))
}

// command translates a mutating subcommand to a stack command.
func (c *cli) command(cmd string, args []string) (stack.Command, error) {
	switch cmd {
	case "drop", "pull":
		at, err := parseLatLon(args)
		if err != nil {
			return stack.Command{}, err
		}
		if cmd == "drop" {
			return stack.Command{Action: race.DropMark, Value: at}, nil
		}
		return stack.Command{Action: race.PullNearestMark, Value: at}, nil

	case "finish":
		if len(args) == 1 && args[0] == "clear" {
			return stack.Command{Action: race.ClearFinishFlag}, nil
		}
		at, err := parseLatLon(args)
		if err != nil {
			return stack.Command{}, err
		}
		return stack.Command{Action: race.SetFinishFlag, Value: at}, nil

	case "layout":
		if len(args) == 0 || len(args) > 5 {
			return stack.Command{}, errUsage
		}
		var s layout.Settings
		fields := []*string{(*string)(&s.Shape), (*string)(&s.Start), (*string)(&s.Finish), (*string)(&s.Wind), (*string)(&s.Lee)}
		for i, arg := range args {
			*fields[i] = arg
		}
		if got := s.Revalidate(); got != s {
			log.WithFields(log.Fields{"asked": s.Key(), "got": got.Key()}).Info("Adjusted layout settings")
		}
		return stack.Command{Action: race.SetLayout, Value: s.Layout()}, nil

	case "set":
		if len(args) != 2 {
			return stack.Command{}, errUsage
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return stack.Command{}, err
		}
		return stack.Command{Action: race.SetDistance, Value: race.NewDistanceValue{Measurement: layout.DistanceMeasurement(args[0]), Value: v}}, nil

	case "boats":
		if len(args) != 1 {
			return stack.Command{}, errUsage
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return stack.Command{}, err
		}
		return stack.Command{Action: race.SetNumberOfBoats, Value: n}, nil

	case "lock":
		if len(args) != 1 {
			return stack.Command{}, errUsage
		}
		d, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return stack.Command{}, err
		}
		return stack.Command{Action: race.LockCourseDirection, Value: d}, nil

	case "unlock":
		return stack.Command{Action: race.UnlockCourseDirection}, nil
	case "undo":
		return stack.Command{Action: race.Undo}, nil
	case "redo":
		return stack.Command{Action: race.Redo}, nil
	}
	return stack.Command{}, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, errUsage
	}
	values := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseLatLon(args []string) (latlon.LatLon, error) {
	v, err := parseFloats(args, 2)
	if err != nil {
		return latlon.LatLon{}, err
	}
	return latlon.LatLon{Lat: v[0], Lon: v[1]}, nil
}

func parseWind(args []string) (wind.Information, error) {
	start := time.Now().UTC().Truncate(wind.Interval)
	if len(args) == 4 {
		unix, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return wind.Information{}, err
		}
		start = time.Unix(unix, 0).UTC()
		args = args[:3]
	}
	v, err := parseFloats(args, 3)
	if err != nil {
		return wind.Information{}, err
	}
	return wind.Information{StartTime: start, Direction: latlon.Wrap360(v[0]), Speed: v[1], Gusts: v[2]}, nil
}

type layoutEntry struct {
	ID           uuid.UUID                    `json:"id"`
	Name         string                       `json:"name"`
	Description  string                       `json:"description,omitempty"`
	ZoneSize     int                          `json:"zoneSize"`
	Marks        []layout.MarkRole            `json:"marks"`
	Measurements []layout.DistanceMeasurement `json:"measurements"`
}

// layouts lists the layouts of the catalog, without their loci.
func (c *cli) layouts() []layoutEntry {
	var entries []layoutEntry
	for _, l := range c.catalog.Layouts() {
		entries = append(entries, layoutEntry{
			ID:           l.ID,
			Name:         l.Name,
			Description:  l.Description,
			ZoneSize:     l.ZoneSize,
			Marks:        l.Marks(),
			Measurements: l.Measurements(),
		})
	}
	return entries
}

// view is what show prints.
type view struct {
	stack.RemoteRecord
	CourseDirection   latlon.Direction             `json:"courseDirection"`
	WindShift         *latlon.Direction            `json:"windShift,omitempty"`
	LengthOfStartLine latlon.Distance              `json:"lengthOfStartLine"`
	Center            latlon.LatLon                `json:"center"`
	Region            latlon.Region                `json:"region"`
	Marks             []markView                   `json:"marks"`
	Measurements      []layout.DistanceMeasurement `json:"measurements"`
}

type markView struct {
	Location latlon.LatLon   `json:"location"`
	Role     layout.MarkRole `json:"role"`
}

func newView(l *stack.Local) view {
	s := l.Current()
	v := view{
		RemoteRecord:      l.Remote().Record(),
		CourseDirection:   s.CourseDirection(),
		LengthOfStartLine: s.LengthOfStartLine(),
		Center:            s.Center(),
		Region:            s.EnclosingRegion(),
		Measurements:      s.Course.Layout.Measurements(),
	}
	if shift, ok := s.WindShift(); ok {
		v.WindShift = &shift
	}
	for _, m := range s.Course.Marks {
		v.Marks = append(v.Marks, markView{Location: m, Role: s.CurrentRole(m)})
	}
	return v
}

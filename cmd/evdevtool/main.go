// Command evdevtool dumps the capability report of an evdev character
// device (name, identity, supported types/codes, MT slot count; input
// properties are not included) and optionally diffs it against a
// previously saved report.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/temoto/goevdev/evdev"
	"github.com/temoto/goevdev/evdev/evcodes"
	"github.com/temoto/goevdev/log2"
)

const usage = `syntax: evdevtool -device /dev/input/eventN [flags]

- -dump=text|yaml   report format (default text)
- -diff=path.yaml    compare against a report saved by a previous -dump=yaml run
- -grab              hold EVIOCGRAB for the duration of the dump
`

var log = log2.NewStderr(log2.LInfo)

type typeReport struct {
	Type  string   `yaml:"type"`
	Codes []string `yaml:"codes,omitempty"`
}

type report struct {
	Name          string       `yaml:"name"`
	Phys          string       `yaml:"phys,omitempty"`
	Uniq          string       `yaml:"uniq,omitempty"`
	Bus           uint16       `yaml:"bus"`
	Vendor        uint16       `yaml:"vendor"`
	Product       uint16       `yaml:"product"`
	Version       uint16       `yaml:"version"`
	DriverVersion string       `yaml:"driver_version"`
	NumSlots      int          `yaml:"num_slots"`
	Types         []typeReport `yaml:"types"`
}

func buildReport(m *evdev.DeviceModel) report {
	r := report{
		Name:    m.Identity.Name,
		Phys:    m.Identity.Phys,
		Uniq:    m.Identity.Uniq,
		Bus:     m.Identity.BusType,
		Vendor:  m.Identity.Vendor,
		Product: m.Identity.Product,
		Version: m.Identity.Version,
		DriverVersion: fmt.Sprintf("%d.%d.%d",
			m.Identity.DriverVersionMajor, m.Identity.DriverVersionMinor, m.Identity.DriverVersionMicro),
		NumSlots: m.NumSlots(),
	}

	types := m.Caps.SupportedTypes()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		tname, ok := evcodes.TypeName(t)
		if !ok {
			tname = fmt.Sprintf("EV_0x%02x", t)
		}
		tr := typeReport{Type: tname}
		codes := m.Caps.SupportedCodes(t)
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, c := range codes {
			cname, ok := evcodes.CodeName(t, c)
			if !ok {
				cname = fmt.Sprintf("0x%03x", c)
			}
			tr.Codes = append(tr.Codes, cname)
		}
		r.Types = append(r.Types, tr)
	}
	return r
}

func printText(r report) {
	fmt.Printf("name=%q phys=%q uniq=%q bus=%#04x vendor=%#04x product=%#04x version=%#04x driver=%s slots=%d\n",
		r.Name, r.Phys, r.Uniq, r.Bus, r.Vendor, r.Product, r.Version, r.DriverVersion, r.NumSlots)
	for _, t := range r.Types {
		fmt.Printf("  %s: %v\n", t.Type, t.Codes)
	}
}

func loadReport(path string) (report, error) {
	var r report
	b, err := os.ReadFile(path)
	if err != nil {
		return r, errors.Trace(err)
	}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return r, errors.Annotatef(err, "parsing %s", path)
	}
	return r, nil
}

// capsFromReport rebuilds just enough of a DeviceModel to compare
// supported-type sets against a live model; per-code detail isn't needed
// since DiffTypes only reports at the type level.
func capsFromReport(r report) *evdev.DeviceModel {
	m := evdev.New()
	for _, t := range r.Types {
		if tnum, ok := evcodes.TypeFromName(t.Type); ok {
			m.EnableType(tnum)
		}
	}
	return m
}

func printDiff(prev, cur *evdev.CapabilityBits) {
	added, removed := prev.DiffTypes(cur)
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, t := range added {
		name, _ := evcodes.TypeName(t)
		fmt.Printf("+ type %s\n", name)
	}
	for _, t := range removed {
		name, _ := evcodes.TypeName(t)
		fmt.Printf("- type %s\n", name)
	}
	if len(added) == 0 && len(removed) == 0 {
		fmt.Println("no type-level differences")
	}
}

func main() {
	cmdline := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	device := cmdline.String("device", "/dev/input/event0", "")
	dumpFormat := cmdline.String("dump", "text", "text|yaml")
	diffPath := cmdline.String("diff", "", "compare against a saved yaml report")
	grab := cmdline.Bool("grab", false, "hold EVIOCGRAB for the duration of the dump")
	cmdline.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		cmdline.PrintDefaults()
	}
	cmdline.Parse(os.Args[1:])

	f, err := os.OpenFile(*device, os.O_RDWR, 0)
	if err != nil {
		log.Fatalf("open %s: %v", *device, err)
	}
	defer f.Close()

	m := evdev.New()
	if err := evdev.Attach(m, f.Fd()); err != nil {
		log.Fatalf("attach %s: %v", *device, err)
	}
	defer m.Dispose()

	if *grab {
		if err := m.Grab(); err != nil {
			log.Errorf("grab: %v", err)
		} else {
			defer m.Ungrab()
		}
	}

	r := buildReport(m)

	switch *dumpFormat {
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			log.Fatalf("marshal: %v", err)
		}
		os.Stdout.Write(b)
	default:
		printText(r)
	}

	if *diffPath != "" {
		prevReport, err := loadReport(*diffPath)
		if err != nil {
			log.Fatalf("loading %s: %v", *diffPath, err)
		}
		prevModel := capsFromReport(prevReport)
		printDiff(&prevModel.Caps, &m.Caps)
	}
}

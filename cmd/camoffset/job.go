package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/cam"
	"github.com/gogpu/cam/toolpath"
)

// Job is a machining job file: one tool and a list of shapes, each with the
// operation to run on it.
type Job struct {
	Tool      ToolConfig    `toml:"tool" yaml:"tool"`
	Method    string        `toml:"method" yaml:"method"`
	Rule      string        `toml:"rule" yaml:"rule"`
	Tolerance float64       `toml:"tolerance" yaml:"tolerance"`
	Shapes    []ShapeConfig `toml:"shapes" yaml:"shapes"`
}

// ToolConfig describes the cutter.
type ToolConfig struct {
	Diameter float64 `toml:"diameter" yaml:"diameter"`
	Stepover float64 `toml:"stepover" yaml:"stepover"`
}

// ShapeConfig is one shape of a job.
type ShapeConfig struct {
	Name      string             `toml:"name" yaml:"name"`
	Kind      string             `toml:"kind" yaml:"kind"`
	X         float64            `toml:"x" yaml:"x"`
	Y         float64            `toml:"y" yaml:"y"`
	W         float64            `toml:"w" yaml:"w"`
	H         float64            `toml:"h" yaml:"h"`
	R         float64            `toml:"r" yaml:"r"`
	Points    [][]float64        `toml:"points" yaml:"points"`
	Direction toolpath.Direction `toml:"direction" yaml:"direction"`
	Tabs      *toolpath.TabSpec  `toml:"tabs" yaml:"tabs"`
}

// LoadJob reads a job file. The format follows the extension: .toml, or
// .yaml and .yml.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &job)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &job)
	default:
		return nil, fmt.Errorf("job %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}
	return &job, nil
}

// Options converts the job-wide settings into offset options.
func (j *Job) Options() ([]cam.OffsetOption, error) {
	var opts []cam.OffsetOption
	switch strings.ToLower(j.Method) {
	case "", "exact":
	case "tessellate":
		opts = append(opts, cam.WithMethod(cam.MethodTessellate))
	default:
		return nil, fmt.Errorf("unknown method %q", j.Method)
	}
	switch strings.ToLower(j.Rule) {
	case "", "positive":
	case "nonzero":
		opts = append(opts, cam.WithFillRule(cam.FillNonZero))
	default:
		return nil, fmt.Errorf("unknown fill rule %q", j.Rule)
	}
	if j.Tolerance > 0 {
		opts = append(opts, cam.WithTolerance(j.Tolerance))
	}
	return opts, nil
}

// Operations builds one operation per shape.
func (j *Job) Operations() ([]toolpath.Operation, error) {
	opts, err := j.Options()
	if err != nil {
		return nil, err
	}
	tool := toolpath.Tool{Diameter: j.Tool.Diameter, Stepover: j.Tool.Stepover}
	if err := tool.Validate(); err != nil {
		return nil, err
	}
	ops := make([]toolpath.Operation, 0, len(j.Shapes))
	for i, s := range j.Shapes {
		c, err := s.Contour()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", s.Kind, i)
		}
		ops = append(ops, toolpath.Operation{
			Name:      name,
			Shape:     c,
			Direction: s.Direction,
			Tool:      tool,
			Tabs:      s.Tabs,
			Options:   opts,
		})
	}
	return ops, nil
}

// Contour builds the shape geometry.
func (s ShapeConfig) Contour() (cam.Contour, error) {
	switch strings.ToLower(s.Kind) {
	case "rect":
		return cam.Rect(s.X, s.Y, s.W, s.H), nil
	case "rounded_rect":
		return cam.RoundedRect(s.X, s.Y, s.W, s.H, s.R), nil
	case "circle":
		if s.R <= 0 {
			return nil, fmt.Errorf("circle radius %v", s.R)
		}
		return cam.Circle(cam.Pt(s.X, s.Y), s.R), nil
	case "polygon":
		pts := make([]cam.Point, 0, len(s.Points))
		for _, p := range s.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("polygon point %v: want [x, y]", p)
			}
			pts = append(pts, cam.Pt(p[0], p[1]))
		}
		if len(pts) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(pts))
		}
		return cam.Polygon(pts...), nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
}

package view

import (
	"log/slog"
	"strings"

	"github.com/selevt/video-area-selection/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TemplateBar owns the output-template entry and the substituted result
// label. Applying writes the template back into *config.Config and persists.
type TemplateBar interface {
	Build(startRow int, onApply func()) (endRow int)
	Template() string
	SetOutput(s string)
	SetEditable(enabled bool)
}

type templateBar struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	entry    *TextWidget
	output   *LabelWidget
	applyBtn *ButtonWidget
}

// NewTemplateBar creates the view bound to cfg.
func NewTemplateBar(cfg *config.Config, cfgPath string, logger *slog.Logger) TemplateBar {
	return &templateBar{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

func (v *templateBar) Build(startRow int, onApply func()) (row int) {
	row = startRow
	lbl := Label(Txt("Template"), Anchor("w"))
	Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.entry = Text(Height(1), Width(48))
	Grid(v.entry, Row(row), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.entry.Delete("1.0", END)
	if v.cfg != nil {
		v.entry.Insert("1.0", v.cfg.Template)
	}
	v.applyBtn = Button(Txt("Apply"), Command(func() { v.apply(onApply) }))
	Grid(v.applyBtn, Row(row), Column(4), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	row++
	outCaption := Label(Txt("Output"), Anchor("w"))
	Grid(outCaption, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.output = Label(Txt(""), Anchor("w"), Relief("groove"))
	Grid(v.output, Row(row), Column(1), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	row++
	return row
}

// Template returns the current entry text with surrounding whitespace trimmed.
func (v *templateBar) Template() string {
	if v == nil || v.entry == nil {
		return ""
	}
	parts := v.entry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

func (v *templateBar) apply(onApply func()) {
	if v.cfg != nil {
		v.cfg.Template = v.Template()
		if err := v.cfg.Save(v.cfgPath); err != nil {
			if v.logger != nil {
				v.logger.Error("config save failed", "error", err)
			}
		} else if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if onApply != nil {
		onApply()
	}
}

func (v *templateBar) SetOutput(s string) {
	if v != nil && v.output != nil {
		v.output.Configure(Txt(s))
	}
}

func (v *templateBar) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if v.entry != nil {
		v.entry.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

package pattern

import "fmt"

// RegisterBuiltins populates the registry with the built-in pattern set:
// Tabs, Dialog, Accordion, Form, Card, and Navigation.
func RegisterBuiltins(r *Registry) error {
	for _, m := range Builtins() {
		if err := r.Register(m); err != nil {
			return fmt.Errorf("register builtin %q: %w", m.ID, err)
		}
	}
	return nil
}

// Builtins returns fresh copies of the built-in pattern manifests. The data
// is declarative fixture content; callers own the returned values.
func Builtins() []*Manifest {
	return []*Manifest{
		tabsManifest(),
		dialogManifest(),
		accordionManifest(),
		formManifest(),
		cardManifest(),
		navigationManifest(),
	}
}

func tabsManifest() *Manifest {
	return &Manifest{
		ID:          "tabs",
		Name:        "Tabs",
		Description: "Tabbed interface with a tablist of triggers and one panel per tab",
		Version:     "1.0.0",
		Category:    CategoryNavigation,
		Layer:       LayerCompounds,
		Tags:        []string{"navigation", "panels", "aria"},
		Structure: []NodeDef{
			{
				ID:          "tablist",
				Name:        "tablist",
				Type:        "frame",
				SemanticKey: "tabs.tablist",
				Required:    true,
			},
			{
				ID:          "tab",
				Name:        "tab",
				Type:        "text",
				SemanticKey: "tabs.tab[0]",
				Required:    true,
				Multiple:    true,
			},
			{
				ID:          "tabpanel",
				Name:        "tabpanel",
				Type:        "frame",
				SemanticKey: "tabs.tabpanel[0]",
				Required:    true,
				Multiple:    true,
				Position:    &Position{RelativeTo: "tablist", Alignment: "start"},
			},
		},
		Relationships: []Relationship{
			{From: "tab", To: "tabpanel", Type: RelControls, Required: true,
				Description: "Each tab controls the panel it reveals"},
			{From: "tablist", To: "tab", Type: RelOwns, Required: true,
				Description: "The tablist owns its tabs"},
		},
		Emission: EmissionSpec{
			HTML: `<div role="tablist">{{#tabs}}<button role="tab" aria-controls="{{panelId}}">{{label}}</button>{{/tabs}}</div>{{#panels}}<div role="tabpanel" id="{{panelId}}">{{content}}</div>{{/panels}}`,
			React: `<Tabs>{{#tabs}}<Tabs.Trigger value="{{value}}">{{label}}</Tabs.Trigger>{{/tabs}}{{#panels}}<Tabs.Panel value="{{value}}">{{content}}</Tabs.Panel>{{/panels}}</Tabs>`,
			Accessibility: []AccessibilityRule{
				{Node: "tablist", Role: "tablist"},
				{Node: "tab", Role: "tab", Attributes: map[string]string{"aria-selected": "true|false", "aria-controls": "tabpanel id"}},
				{Node: "tabpanel", Role: "tabpanel", Attributes: map[string]string{"aria-labelledby": "tab id"}},
			},
		},
		Validation: []ValidationRule{
			{ID: "tabs/panel-per-tab", Severity: "error", Description: "Every tab must have a corresponding panel"},
			{ID: "tabs/single-selection", Severity: "warning", Description: "Exactly one tab should be selected at rest"},
		},
		Examples: []Example{
			{Name: "Settings tabs", Description: "Two-tab settings screen with General and Advanced panels"},
		},
	}
}

func dialogManifest() *Manifest {
	return &Manifest{
		ID:          "dialog",
		Name:        "Dialog",
		Description: "Modal dialog with a title, optional description, and action row",
		Version:     "1.0.0",
		Category:    CategoryOverlay,
		Layer:       LayerCompounds,
		Tags:        []string{"overlay", "modal", "aria"},
		Structure: []NodeDef{
			{
				ID:          "container",
				Name:        "dialog",
				Type:        "frame",
				SemanticKey: "dialog.container",
				Required:    true,
			},
			{
				ID:          "title",
				Name:        "title",
				Type:        "text",
				SemanticKey: "dialog.title",
				Required:    true,
			},
			{
				ID:          "description",
				Name:        "description",
				Type:        "text",
				SemanticKey: "dialog.description",
				Required:    false,
			},
			{
				ID:          "close",
				Name:        "close button",
				Type:        "component",
				SemanticKey: "dialog.close",
				Required:    false,
			},
			{
				ID:          "actions",
				Name:        "actions",
				Type:        "frame",
				SemanticKey: "dialog.actions",
				Required:    false,
				Position:    &Position{RelativeTo: "container", Alignment: "end"},
			},
		},
		Relationships: []Relationship{
			{From: "container", To: "title", Type: RelLabelledBy, Required: true,
				Description: "The dialog is labelled by its title"},
			{From: "container", To: "description", Type: RelDescribedBy, Required: false,
				Description: "The dialog is described by its description text"},
		},
		Emission: EmissionSpec{
			HTML: `<div role="dialog" aria-modal="true" aria-labelledby="{{titleId}}"><h2 id="{{titleId}}">{{title}}</h2>{{body}}</div>`,
			Accessibility: []AccessibilityRule{
				{Node: "container", Role: "dialog", Attributes: map[string]string{"aria-modal": "true"}},
			},
		},
		Validation: []ValidationRule{
			{ID: "dialog/focus-trap", Severity: "warning", Description: "Dialogs should trap focus while open"},
		},
		Examples: []Example{
			{Name: "Confirm delete", Description: "Destructive confirmation with cancel and confirm actions"},
		},
	}
}

func accordionManifest() *Manifest {
	return &Manifest{
		ID:          "accordion",
		Name:        "Accordion",
		Description: "Vertically stacked disclosure sections with a header per panel",
		Version:     "1.0.0",
		Category:    CategoryDisclosure,
		Layer:       LayerCompounds,
		Tags:        []string{"disclosure", "collapse"},
		Structure: []NodeDef{
			{
				ID:          "container",
				Name:        "accordion",
				Type:        "frame",
				SemanticKey: "accordion.container",
				Required:    true,
			},
			{
				ID:          "header",
				Name:        "header",
				Type:        "text",
				SemanticKey: "accordion.header[0]",
				Required:    true,
				Multiple:    true,
			},
			{
				ID:          "panel",
				Name:        "panel",
				Type:        "frame",
				SemanticKey: "accordion.panel[0]",
				Required:    true,
				Multiple:    true,
				Position:    &Position{RelativeTo: "header", Alignment: "start"},
			},
		},
		Relationships: []Relationship{
			{From: "header", To: "panel", Type: RelControls, Required: true,
				Description: "Each header toggles the panel beneath it"},
			{From: "container", To: "header", Type: RelOwns, Required: true,
				Description: "The accordion owns its headers"},
		},
		Emission: EmissionSpec{
			HTML: `{{#sections}}<h3><button aria-expanded="{{open}}" aria-controls="{{panelId}}">{{label}}</button></h3><div id="{{panelId}}" role="region">{{content}}</div>{{/sections}}`,
			Accessibility: []AccessibilityRule{
				{Node: "header", Attributes: map[string]string{"aria-expanded": "true|false", "aria-controls": "panel id"}},
				{Node: "panel", Role: "region"},
			},
		},
		Validation: []ValidationRule{
			{ID: "accordion/panel-per-header", Severity: "error", Description: "Every header must have a corresponding panel"},
		},
		Examples: []Example{
			{Name: "FAQ", Description: "Frequently-asked-questions list with one section per question"},
		},
	}
}

func formManifest() *Manifest {
	return &Manifest{
		ID:          "form",
		Name:        "Form",
		Description: "Input form with labelled fields and a submit action",
		Version:     "1.0.0",
		Category:    CategoryInput,
		Layer:       LayerComposers,
		Tags:        []string{"input", "fields"},
		Structure: []NodeDef{
			{
				ID:          "container",
				Name:        "form",
				Type:        "frame",
				SemanticKey: "form.container",
				Required:    true,
			},
			{
				ID:          "field",
				Name:        "field",
				Type:        "frame",
				SemanticKey: "form.field[0]",
				Required:    true,
				Multiple:    true,
				Children:    []string{"label", "input"},
			},
			{
				ID:          "label",
				Name:        "label",
				Type:        "text",
				SemanticKey: "form.label[0]",
				Required:    true,
				Multiple:    true,
			},
			{
				ID:          "input",
				Name:        "input",
				Type:        "component",
				SemanticKey: "form.input[0]",
				Required:    true,
				Multiple:    true,
			},
			{
				ID:          "submit",
				Name:        "submit",
				Type:        "component",
				SemanticKey: "form.submit",
				Required:    true,
			},
		},
		Relationships: []Relationship{
			{From: "input", To: "label", Type: RelLabelledBy, Required: true,
				Description: "Each input is labelled by its field label"},
			{From: "container", To: "field", Type: RelOwns, Required: true,
				Description: "The form owns its fields"},
		},
		Emission: EmissionSpec{
			HTML: `<form>{{#fields}}<label for="{{inputId}}">{{label}}</label><input id="{{inputId}}" name="{{name}}">{{/fields}}<button type="submit">{{submitLabel}}</button></form>`,
			Accessibility: []AccessibilityRule{
				{Node: "input", Attributes: map[string]string{"aria-labelledby": "label id"}},
			},
		},
		Validation: []ValidationRule{
			{ID: "form/label-per-input", Severity: "error", Description: "Every input must have a visible label"},
			{ID: "form/single-submit", Severity: "warning", Description: "Forms should have exactly one primary submit action"},
		},
		Examples: []Example{
			{Name: "Sign up", Description: "Email and password fields with a create-account action"},
		},
	}
}

func cardManifest() *Manifest {
	return &Manifest{
		ID:          "card",
		Name:        "Card",
		Description: "Content card with a title, optional media and body, and an action row",
		Version:     "1.0.0",
		Category:    CategoryContainer,
		Layer:       LayerCompounds,
		Tags:        []string{"container", "content"},
		Structure: []NodeDef{
			{
				ID:          "container",
				Name:        "card",
				Type:        "frame",
				SemanticKey: "card.container",
				Required:    true,
			},
			{
				ID:          "media",
				Name:        "media",
				Type:        "frame",
				SemanticKey: "card.media",
				Required:    false,
			},
			{
				ID:          "title",
				Name:        "title",
				Type:        "text",
				SemanticKey: "card.title",
				Required:    true,
			},
			{
				ID:          "body",
				Name:        "body",
				Type:        "text",
				SemanticKey: "card.body",
				Required:    false,
			},
			{
				ID:          "actions",
				Name:        "actions",
				Type:        "frame",
				SemanticKey: "card.actions",
				Required:    false,
				Position:    &Position{RelativeTo: "container", Alignment: "end"},
			},
		},
		Relationships: []Relationship{
			{From: "container", To: "title", Type: RelLabelledBy, Required: true,
				Description: "The card is labelled by its title"},
		},
		Emission: EmissionSpec{
			HTML: `<article aria-labelledby="{{titleId}}">{{#media}}<img src="{{src}}" alt="{{alt}}">{{/media}}<h3 id="{{titleId}}">{{title}}</h3><p>{{body}}</p></article>`,
		},
		Validation: []ValidationRule{
			{ID: "card/media-alt", Severity: "warning", Description: "Card media should carry alternative text"},
		},
		Examples: []Example{
			{Name: "Product card", Description: "Product tile with image, name, and add-to-cart action"},
		},
	}
}

func navigationManifest() *Manifest {
	return &Manifest{
		ID:          "navigation",
		Name:        "Navigation",
		Description: "Primary navigation bar with a list of navigation items",
		Version:     "1.0.0",
		Category:    CategoryNavigation,
		Layer:       LayerCompounds,
		Tags:        []string{"navigation", "menu"},
		Structure: []NodeDef{
			{
				ID:          "container",
				Name:        "navigation",
				Type:        "frame",
				SemanticKey: "nav.container",
				Required:    true,
			},
			{
				ID:          "item",
				Name:        "item",
				Type:        "text",
				SemanticKey: "nav.item[0]",
				Required:    true,
				Multiple:    true,
			},
			{
				ID:          "menu",
				Name:        "menu",
				Type:        "group",
				SemanticKey: "nav.menu",
				Required:    false,
			},
		},
		Relationships: []Relationship{
			{From: "container", To: "item", Type: RelOwns, Required: true,
				Description: "The navigation bar owns its items"},
		},
		Emission: EmissionSpec{
			HTML: `<nav><ul>{{#items}}<li><a href="{{href}}"{{#current}} aria-current="page"{{/current}}>{{label}}</a></li>{{/items}}</ul></nav>`,
			Accessibility: []AccessibilityRule{
				{Node: "container", Role: "navigation"},
				{Node: "item", Attributes: map[string]string{"aria-current": "page, on the active item"}},
			},
		},
		Validation: []ValidationRule{
			{ID: "nav/current-item", Severity: "warning", Description: "One item should carry aria-current on each page"},
		},
		Examples: []Example{
			{Name: "Site header", Description: "Top navigation with Home, Docs, and About"},
		},
	}
}

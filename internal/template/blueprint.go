package template

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flaskforge/fforge/internal/config"
)

const blueprintRoutesPy = `from flask import Blueprint, render_template

{{blueprint_name}} = Blueprint('{{blueprint_name}}', __name__, template_folder='templates', static_folder='static')

@{{blueprint_name}}.route('/{{blueprint_name}}_home')
def {{blueprint_name}}_home():
    return render_template('{{blueprint_name}}/{{blueprint_name}}_home.html')
`

const blueprintInitPy = `from .routes import {{blueprint_name}}
`

const blueprintFormsPy = `from flask_wtf import FlaskForm
from wtforms import StringField, PasswordField, SubmitField
from wtforms.validators import DataRequired
`

const blueprintHomeHTML = `{% extends "base.html" %}
{% block content %}
<h1>Welcome to the {{blueprint_title}} Home Page</h1>
{% endblock %}
`

// blueprintTree is the generic blueprint sub-tree. Blueprint-scoped tokens
// are substituted at expansion time; project-scoped tokens are left for
// the main render pass.
func blueprintTree() *Node {
	return Dir("{{blueprint_name}}",
		File("__init__.py", blueprintInitPy),
		File("routes.py", blueprintRoutesPy),
		File("forms.py", blueprintFormsPy),
		Dir("templates",
			File("{{blueprint_name}}_home.html", blueprintHomeHTML),
		),
		Dir("static"),
	)
}

var titleCaser = cases.Title(language.English)

// ExpandBlueprint instantiates the blueprint sub-tree for one blueprint,
// substituting the blueprint-scoped tokens into node names and contents.
func ExpandBlueprint(name string) *Node {
	bpCtx := RenderContext{
		"blueprint_name":  name,
		"blueprint_title": titleCaser.String(name),
	}

	var expand func(n *Node) *Node
	expand = func(n *Node) *Node {
		out := &Node{
			Name:    bpCtx.Apply(n.Name),
			Kind:    n.Kind,
			Content: bpCtx.Apply(n.Content),
		}
		for _, c := range n.Children {
			out.Children = append(out.Children, expand(c))
		}
		return out
	}
	return expand(blueprintTree())
}

// BuildProjectTree assembles the full in-memory project tree: the base
// template copy plus one expanded sub-tree per requested blueprint,
// grafted under the application package directory. Duplicate blueprint
// names are idempotent set membership (first occurrence wins); order
// affects only the write order on disk, never the resulting file set.
//
// A blueprint whose name matches an entry the template already places in
// the application package ("templates", "static", ...) is a hard error,
// never a silent skip: the user asked for a sub-tree the render could
// not produce.
func BuildProjectTree(catalog *Catalog, cfg *config.ProjectConfig) (*Node, error) {
	root, err := catalog.Get(cfg.Template)
	if err != nil {
		return nil, err
	}

	app := root.Child(appPackageDir)
	if app == nil {
		return nil, fmt.Errorf("template %q has no application package directory", cfg.Template)
	}

	grafted := make(map[string]struct{}, len(cfg.Blueprints))
	for _, bp := range cfg.Blueprints {
		if _, ok := grafted[bp]; ok {
			continue
		}
		if app.Child(bp) != nil {
			return nil, fmt.Errorf("%w: %q in template %q", ErrBlueprintCollision, bp, cfg.Template)
		}
		grafted[bp] = struct{}{}
		app.Add(ExpandBlueprint(bp))
	}

	return root, nil
}

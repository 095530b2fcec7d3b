package template

// appPackageDir is the name of the application package directory inside
// every built-in template. Blueprint sub-trees are grafted under it.
const appPackageDir = "{{project_name}}"

const initPyContent = `from flask import Flask
from flask_sqlalchemy import SQLAlchemy
from flask_migrate import Migrate

db = SQLAlchemy()
migrate = Migrate()

def create_app():
    app = Flask(__name__)
    app.config.from_pyfile('config.py')

    db.init_app(app)
    migrate.init_app(app, db)

    from . import routes
    app.register_blueprint(routes.main_bp)

    return app
`

const modelsPyContent = `from . import db

class User(db.Model):
    id = db.Column(db.Integer, primary_key=True)
    username = db.Column(db.String(64), index=True, unique=True)
    email = db.Column(db.String(120), index=True, unique=True)
    password_hash = db.Column(db.String(128))

    def __repr__(self):
        return f'<User {self.username}>'
`

const configPyContent = `import os

basedir = os.path.abspath(os.path.dirname(__file__))

SECRET_KEY = os.environ.get('SECRET_KEY', 'dev')
SQLALCHEMY_DATABASE_URI = os.environ.get(
    'DATABASE_URL', 'sqlite:///' + os.path.join(basedir, '{{project_name}}.db'))
SQLALCHEMY_TRACK_MODIFICATIONS = False
`

const restRoutesPyContent = `from flask import Blueprint, jsonify

main_bp = Blueprint('main', __name__)

@main_bp.route('/')
def index():
    return jsonify(status='ok', project='{{project_name}}')
`

const fullStackRoutesPyContent = `from flask import Blueprint, render_template

main_bp = Blueprint('main', __name__, template_folder='templates', static_folder='static')

@main_bp.route('/')
def index():
    return render_template('index.html')
`

const fullStackFormsPyContent = `from flask_wtf import FlaskForm
from wtforms import StringField, PasswordField, SubmitField
from wtforms.validators import DataRequired

class LoginForm(FlaskForm):
    username = StringField('Username', validators=[DataRequired()])
    password = PasswordField('Password', validators=[DataRequired()])
    submit = SubmitField('Sign In')
`

const baseHTMLContent = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{project_name}}</title>
</head>
<body>
    {% block content %}{% endblock %}
</body>
</html>
`

const indexHTMLContent = `{% extends "base.html" %}
{% block content %}
<h1>Welcome to {{project_name}}</h1>
{% endblock %}
`

const styleCSSContent = `body {
    font-family: sans-serif;
    margin: 2rem auto;
    max-width: 60rem;
}
`

const mainPyContent = `from {{project_name}} import create_app

app = create_app()

if __name__ == '__main__':
    app.run()
`

const requirementsContent = `{{requirements}}
`

const dockerfileContent = `FROM python:3.8-slim-buster
WORKDIR /app
COPY requirements.txt requirements.txt
RUN pip install -r requirements.txt
COPY . .
CMD ["flask", "run", "--host=0.0.0.0"]
`

const dockerComposeContent = `version: '3'
services:
  web:
    build: .
    ports:
      - "5000:5000"
    volumes:
      - .:/app
    environment:
      FLASK_ENV: development
      FLASK_APP: main.py
`

const ciWorkflowContent = `name: Python application

on:
  push:
    branches: [ main ]
  pull_request:
    branches: [ main ]

jobs:
  build:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        python-version: [3.6, 3.7, 3.8, 3.9]

    steps:
    - uses: actions/checkout@v2
    - name: Set up Python
      uses: actions/setup-python@v2
      with:
        python-version: ${{ matrix.python-version }}
    - name: Install dependencies
      run: |
        python -m pip install --upgrade pip
        pip install -r requirements.txt
    - name: Test with pytest
      run: |
        pytest
`

const gitignoreContent = `__pycache__/
*.pyc
instance/
.env
{{venv_dir}}/
`

const readmeContent = `# {{project_name}}

Flask project scaffolded with fforge {{version}}.

## Quickstart

` + "```sh" + `
source {{venv_dir}}/bin/activate
flask --app main run
` + "```" + `
`

// restAPITree is the minimal JSON API template.
func restAPITree() *Node {
	return Dir(".",
		Dir(appPackageDir,
			File("__init__.py", initPyContent),
			File("routes.py", restRoutesPyContent),
			File("models.py", modelsPyContent),
			File("config.py", configPyContent),
			Dir("templates",
				File("base.html", baseHTMLContent),
			),
			Dir("static"),
		),
		File("main.py", mainPyContent),
		File("requirements.txt", requirementsContent),
		File("Dockerfile", dockerfileContent),
		File("docker-compose.yml", dockerComposeContent),
		File(".gitignore", gitignoreContent),
		File("README.md", readmeContent),
		Dir(".github",
			Dir("workflows",
				File("python-app.yml", ciWorkflowContent),
			),
		),
	)
}

// fullStackTree extends rest_api with server-rendered pages, forms, and
// static assets.
func fullStackTree() *Node {
	root := restAPITree()
	app := root.Child(appPackageDir)

	// Replace the JSON routes with template-rendering ones.
	app.Child("routes.py").Content = fullStackRoutesPyContent
	app.Add(File("forms.py", fullStackFormsPyContent))
	app.Child("templates").Add(File("index.html", indexHTMLContent))
	app.Child("static").Add(Dir("css",
		File("style.css", styleCSSContent),
	))

	return root
}

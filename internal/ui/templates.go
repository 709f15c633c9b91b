package ui

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/me/clinidash/internal/i18n"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"percent": func(a, b int) int {
		if b == 0 {
			return 0
		}
		return (a * 100) / b
	},
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"derefStr": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"levelColor": func(level int) string {
		// Tailwind badge classes by barrier severity.
		switch {
		case level <= 1:
			return "bg-green-100 text-green-800"
		case level <= 3:
			return "bg-yellow-100 text-yellow-800"
		default:
			return "bg-red-100 text-red-800"
		}
	},
	"genderKey": func(g string) string {
		// Wire values are Spanish; map to i18n keys for display.
		switch strings.ToLower(g) {
		case "masculino", "male":
			return "male"
		case "femenino", "female":
			return "female"
		default:
			return "other"
		}
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
}

// renderTemplate renders a page template inside the layout, binding the
// "t" lookup to the request language.
func renderTemplate(w io.Writer, lang i18n.Lang, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	funcs := template.FuncMap{"t": i18n.Func(lang)}
	tmpl, err := template.New("layout").Funcs(templateFuncs).Funcs(funcs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content, keyed by page name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                        CliniDash
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        <a href="/" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "dashboard"}}</a>
                        <a href="/patients" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "patients"}}</a>
                        <a href="/predictions" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "predictions"}}</a>
                        <a href="/analytics" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "analytics"}}</a>
                        {{if .Session.IsAdmin}}
                        <a href="/admin/users" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "userList"}}</a>
                        {{end}}
                        <a href="/settings" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{t "settings"}}</a>
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.Session.Name}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">{{t "logout"}}</a>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center bg-gray-50 py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">{{t "welcomeBack"}}</h2>
            <p class="mt-2 text-center text-sm text-gray-600">{{t "loginSubtitle"}}</p>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <div class="rounded-md shadow-sm -space-y-px">
                <div>
                    <label for="email" class="sr-only">{{t "email"}}</label>
                    <input id="email" name="email" type="email" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-t-md focus:outline-none sm:text-sm"
                           placeholder="{{t "email"}}">
                </div>
                <div>
                    <label for="password" class="sr-only">{{t "password"}}</label>
                    <input id="password" name="password" type="password" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-b-md focus:outline-none sm:text-sm"
                           placeholder="{{t "password"}}">
                </div>
            </div>
            <div>
                <button type="submit"
                        class="group relative w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">
                    {{t "login"}}
                </button>
            </div>
        </form>
    </div>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-bold text-gray-900">{{t "dashboard"}}</h1>
    <div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4">
        <div class="bg-white overflow-hidden shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500 truncate">{{t "totalPatients"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.TotalPatients}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500 truncate">{{t "activeCases"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.ActiveCases}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500 truncate">{{t "predictions"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.Predicted}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500 truncate">{{t "successRate"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.PredictedPercent}}%</dd>
        </div>
    </div>

    <div class="mt-8 bg-white shadow rounded-lg">
        <div class="px-4 py-5 sm:px-6 flex justify-between items-center">
            <h2 class="text-lg font-medium text-gray-900">{{t "recentPatients"}}</h2>
            <a href="/patients" class="text-sm text-indigo-600 hover:text-indigo-500">{{t "viewAll"}}</a>
        </div>
        {{if .Recent}}
        <ul class="divide-y divide-gray-200">
            {{range .Recent}}
            <li class="px-4 py-4 sm:px-6 flex justify-between">
                <a href="/patients/{{.ID}}" class="text-sm font-medium text-indigo-600 hover:text-indigo-500">{{.FullName}}</a>
                <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{levelColor .GlobalLevel}}">{{t "globalLevel"}}: {{.GlobalLevel}}</span>
            </li>
            {{end}}
        </ul>
        {{else}}
        <div class="px-4 py-8 text-center text-sm text-gray-500">
            <p>{{t "noPatientsYet"}}</p>
            <p class="mt-1">{{t "addFirstPatient"}}</p>
        </div>
        {{end}}
    </div>
</div>
{{end}}`,

	"patients/list": `{{define "content"}}
<div class="px-4 sm:px-0">
    <div class="flex justify-between items-center">
        <h1 class="text-2xl font-bold text-gray-900">{{t "patientList"}}</h1>
        <a href="/patients/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">{{t "addPatient"}}</a>
    </div>

    {{if .Message}}
    <div class="mt-4 rounded-md bg-green-50 p-4 text-sm text-green-700">{{t .Message}}</div>
    {{end}}

    <form method="GET" action="/patients" class="mt-4">
        <input type="text" name="q" value="{{.Query}}" placeholder="{{t "search"}}"
               class="block w-full sm:w-80 px-3 py-2 border border-gray-300 rounded-md text-sm">
    </form>

    <div class="mt-4 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "patientName"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "age"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "gender"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "globalLevel"}}</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">{{t "actions"}}</th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Patients}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.FullName}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Age}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{t (genderKey .Gender)}}</td>
                    <td class="px-6 py-4"><span class="inline-flex px-2.5 py-0.5 rounded-full text-xs font-medium {{levelColor .GlobalLevel}}">{{.GlobalLevel}}</span></td>
                    <td class="px-6 py-4 text-right text-sm space-x-3">
                        <a href="/patients/{{.ID}}" class="text-indigo-600 hover:text-indigo-500">{{t "viewDetails"}}</a>
                        <a href="/patients/{{.ID}}/edit" class="text-gray-600 hover:text-gray-500">{{t "edit"}}</a>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">{{t "noPatientsYet"}}</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="mt-4 flex justify-between text-sm">
        {{if gt .Skip 0}}<a href="/patients?skip={{.PrevSkip}}&limit={{.Limit}}" class="text-indigo-600">&larr;</a>{{else}}<span></span>{{end}}
        {{if .HasMore}}<a href="/patients?skip={{.NextSkip}}&limit={{.Limit}}" class="text-indigo-600">&rarr;</a>{{end}}
    </div>
</div>
{{end}}`,

	"patients/form": `{{define "content"}}
<div class="px-4 sm:px-0 max-w-3xl">
    <h1 class="text-2xl font-bold text-gray-900">{{if .Editing}}{{t "editPatient"}}{{else}}{{t "createPatient"}}{{end}}</h1>

    {{if .Error}}
    <div class="mt-4 rounded-md bg-red-50 p-4 text-sm text-red-700">{{.Error}}</div>
    {{end}}

    <form method="POST" action="{{.Action}}" class="mt-6 bg-white shadow rounded-lg p-6 space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">{{t "fullName"}}</label>
            <input type="text" name="nombre_apellidos" value="{{.Patient.FullName}}" required
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "birthDate"}}</label>
                <input type="date" name="fecha_nacimiento" value="{{.Patient.BirthDate}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "age"}}</label>
                <input type="number" name="edad" value="{{.Patient.Age}}" min="0"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "gender"}}</label>
                <select name="genero" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                    <option value="Masculino" {{if eq .Patient.Gender "Masculino"}}selected{{end}}>{{t "male"}}</option>
                    <option value="Femenino" {{if eq .Patient.Gender "Femenino"}}selected{{end}}>{{t "female"}}</option>
                    <option value="Otro" {{if eq .Patient.Gender "Otro"}}selected{{end}}>{{t "other"}}</option>
                </select>
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "sexualOrientation"}}</label>
                <input type="text" name="orientacion_sexual" value="{{.Patient.SexualOrientation}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">{{t "deficiencyCause"}}</label>
            <input type="text" name="causa_deficiencia" value="{{.Patient.DeficiencyCause}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "physicalCategory"}}</label>
                <input type="text" name="cat_fisica" value="{{.Patient.PhysicalCategory}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "psychosocialCategory"}}</label>
                <input type="text" name="cat_psicosocial" value="{{.Patient.PsychosocialCategory}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
        </div>
        <div class="grid grid-cols-3 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD1"}}</label>
                <input type="number" name="nivel_d1" value="{{.Patient.LevelD1}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD2"}}</label>
                <input type="number" name="nivel_d2" value="{{.Patient.LevelD2}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD3"}}</label>
                <input type="number" name="nivel_d3" value="{{.Patient.LevelD3}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD4"}}</label>
                <input type="number" name="nivel_d4" value="{{.Patient.LevelD4}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD5"}}</label>
                <input type="number" name="nivel_d5" value="{{.Patient.LevelD5}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "levelD6"}}</label>
                <input type="number" name="nivel_d6" value="{{.Patient.LevelD6}}" min="0" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
        </div>
        <div class="flex justify-end space-x-3">
            <a href="/patients" class="px-4 py-2 border border-gray-300 rounded-md text-sm text-gray-700">{{t "cancel"}}</a>
            <button type="submit" class="px-4 py-2 border border-transparent rounded-md text-sm text-white bg-indigo-600 hover:bg-indigo-700">{{t "save"}}</button>
        </div>
    </form>
</div>
{{end}}`,

	"patients/detail": `{{define "content"}}
<div class="px-4 sm:px-0 max-w-3xl">
    <div class="flex justify-between items-center">
        <h1 class="text-2xl font-bold text-gray-900">{{.Patient.FullName}}</h1>
        <div class="space-x-3">
            <a href="/patients/{{.Patient.ID}}/edit" class="text-sm text-indigo-600 hover:text-indigo-500">{{t "edit"}}</a>
        </div>
    </div>

    {{if .Message}}
    <div class="mt-4 rounded-md bg-green-50 p-4 text-sm text-green-700">{{t .Message}}</div>
    {{end}}
    {{if .Error}}
    <div class="mt-4 rounded-md bg-red-50 p-4 text-sm text-red-700">{{.Error}}</div>
    {{end}}

    <div class="mt-6 bg-white shadow rounded-lg p-6">
        <dl class="grid grid-cols-2 gap-y-4 gap-x-8 text-sm">
            <div><dt class="font-medium text-gray-500">{{t "birthDate"}}</dt><dd class="text-gray-900">{{.Patient.BirthDate}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "age"}}</dt><dd class="text-gray-900">{{.Patient.Age}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "gender"}}</dt><dd class="text-gray-900">{{t (genderKey .Patient.Gender)}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "sexualOrientation"}}</dt><dd class="text-gray-900">{{.Patient.SexualOrientation}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "deficiencyCause"}}</dt><dd class="text-gray-900">{{.Patient.DeficiencyCause}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "physicalCategory"}}</dt><dd class="text-gray-900">{{.Patient.PhysicalCategory}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "psychosocialCategory"}}</dt><dd class="text-gray-900">{{.Patient.PsychosocialCategory}}</dd></div>
            <div><dt class="font-medium text-gray-500">{{t "globalLevel"}}</dt>
                 <dd><span class="inline-flex px-2.5 py-0.5 rounded-full text-xs font-medium {{levelColor .Patient.GlobalLevel}}">{{.Patient.GlobalLevel}}</span></dd></div>
        </dl>

        <h2 class="mt-6 text-sm font-medium text-gray-500">{{t "barrierType"}}</h2>
        <div class="mt-2 grid grid-cols-6 gap-2 text-center text-sm">
            <div class="rounded bg-gray-50 py-2">D1: {{.Patient.LevelD1}}</div>
            <div class="rounded bg-gray-50 py-2">D2: {{.Patient.LevelD2}}</div>
            <div class="rounded bg-gray-50 py-2">D3: {{.Patient.LevelD3}}</div>
            <div class="rounded bg-gray-50 py-2">D4: {{.Patient.LevelD4}}</div>
            <div class="rounded bg-gray-50 py-2">D5: {{.Patient.LevelD5}}</div>
            <div class="rounded bg-gray-50 py-2">D6: {{.Patient.LevelD6}}</div>
        </div>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg p-6">
        <h2 class="text-lg font-medium text-gray-900">{{t "predictions"}}</h2>
        {{if .Patient.HasPrediction}}
        <dl class="mt-4 text-sm">
            <dt class="font-medium text-gray-500">{{t "barrierType"}}</dt>
            <dd class="text-gray-900">Profile {{deref .Patient.PredictionProfile}}</dd>
            <dt class="mt-2 font-medium text-gray-500">{{t "confidence"}}</dt>
            <dd class="text-gray-900">{{derefStr .Patient.PredictionDescription}}</dd>
        </dl>
        {{end}}
        <form method="POST" action="/patients/{{.Patient.ID}}/predict" class="mt-4">
            <button type="submit" class="px-4 py-2 border border-transparent rounded-md text-sm text-white bg-indigo-600 hover:bg-indigo-700">{{t "runPrediction"}}</button>
        </form>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg p-6">
        <p class="text-sm text-gray-500">{{t "confirmDelete"}} {{t "deleteWarning"}}</p>
        <form method="POST" action="/patients/{{.Patient.ID}}/delete" class="mt-3">
            <button type="submit" class="px-4 py-2 border border-transparent rounded-md text-sm text-white bg-red-600 hover:bg-red-700">{{t "delete"}}</button>
        </form>
    </div>
</div>
{{end}}`,

	"predictions": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-bold text-gray-900">{{t "predictions"}}</h1>

    <div class="mt-6 bg-white shadow rounded-lg">
        <div class="px-4 py-5 sm:px-6"><h2 class="text-lg font-medium text-gray-900">{{t "predictionHistory"}}</h2></div>
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "patientName"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "barrierType"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "globalLevel"}}</th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Predicted}}
                <tr>
                    <td class="px-6 py-4 text-sm"><a href="/patients/{{.ID}}" class="text-indigo-600 hover:text-indigo-500">{{.FullName}}</a></td>
                    <td class="px-6 py-4 text-sm text-gray-900">Profile {{deref .PredictionProfile}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.GlobalLevel}}</td>
                </tr>
                {{else}}
                <tr><td colspan="3" class="px-6 py-8 text-center text-sm text-gray-500">{{t "noPatientsYet"}}</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg">
        <div class="px-4 py-5 sm:px-6"><h2 class="text-lg font-medium text-gray-900">{{t "newPrediction"}}</h2></div>
        <ul class="divide-y divide-gray-200">
            {{range .Pending}}
            <li class="px-6 py-4 flex justify-between items-center">
                <a href="/patients/{{.ID}}" class="text-sm text-indigo-600 hover:text-indigo-500">{{.FullName}}</a>
                <form method="POST" action="/patients/{{.ID}}/predict">
                    <button type="submit" class="text-sm text-white bg-indigo-600 hover:bg-indigo-700 px-3 py-1.5 rounded-md">{{t "runPrediction"}}</button>
                </form>
            </li>
            {{else}}
            <li class="px-6 py-8 text-center text-sm text-gray-500">{{t "selectPatient"}}</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"analytics": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-bold text-gray-900">{{t "analytics"}}</h1>

    <div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-3">
        <div class="bg-white shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500">{{t "totalPatients"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.TotalPatients}}</dd>
        </div>
        <div class="bg-white shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500">{{t "globalLevel"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.AverageGlobalLevel}}</dd>
        </div>
        <div class="bg-white shadow rounded-lg px-4 py-5">
            <dt class="text-sm font-medium text-gray-500">{{t "successRate"}}</dt>
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{.Stats.PredictedPercent}}%</dd>
        </div>
    </div>

    <div class="mt-6 grid grid-cols-1 gap-6 md:grid-cols-2">
        <div class="bg-white shadow rounded-lg p-6">
            <h2 class="text-lg font-medium text-gray-900">{{t "gender"}}</h2>
            <dl class="mt-4 space-y-2 text-sm">
                {{range $g := .Genders}}
                <div class="flex justify-between">
                    <dt class="text-gray-500">{{t (genderKey $g)}}</dt>
                    <dd class="text-gray-900">{{index $.Stats.GenderCounts $g}}</dd>
                </div>
                {{end}}
            </dl>
        </div>
        <div class="bg-white shadow rounded-lg p-6">
            <h2 class="text-lg font-medium text-gray-900">{{t "barrierType"}}</h2>
            <dl class="mt-4 space-y-2 text-sm">
                {{range $p := .Profiles}}
                <div class="flex justify-between">
                    <dt class="text-gray-500">Profile {{$p}}</dt>
                    <dd class="text-gray-900">{{index $.Stats.ProfileCounts $p}}</dd>
                </div>
                {{end}}
            </dl>
        </div>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg p-6">
        <h2 class="text-lg font-medium text-gray-900">{{t "globalLevel"}}</h2>
        <div class="mt-4 grid grid-cols-6 gap-2 text-center text-sm">
            {{range $i, $avg := .Stats.LevelAverages}}
            <div class="rounded bg-gray-50 py-2">D{{add $i 1}}: {{$avg}}</div>
            {{end}}
        </div>
    </div>
</div>
{{end}}`,

	"admin/users": `{{define "content"}}
<div class="px-4 sm:px-0">
    <h1 class="text-2xl font-bold text-gray-900">{{t "userList"}}</h1>

    {{if .Message}}
    <div class="mt-4 rounded-md bg-green-50 p-4 text-sm text-green-700">{{t .Message}}</div>
    {{end}}
    {{if .Error}}
    <div class="mt-4 rounded-md bg-red-50 p-4 text-sm text-red-700">{{.Error}}</div>
    {{end}}

    <div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "email"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "fullName"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "role"}}</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">{{t "status"}}</th>
                    <th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">{{t "actions"}}</th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Users}}
                <tr>
                    <td class="px-6 py-4 text-sm text-gray-900">{{.Email}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.FullName}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Role}}</td>
                    <td class="px-6 py-4 text-sm">
                        {{if .IsActive}}<span class="text-green-700">{{t "active"}}</span>{{else}}<span class="text-red-700">{{t "inactive"}}</span>{{end}}
                    </td>
                    <td class="px-6 py-4 text-right text-sm">
                        <form method="POST" action="/admin/users/{{.ID}}/status" class="inline">
                            {{if .IsActive}}
                            <input type="hidden" name="active" value="false">
                            <button type="submit" class="text-red-600 hover:text-red-500">{{t "deactivate"}}</button>
                            {{else}}
                            <input type="hidden" name="active" value="true">
                            <button type="submit" class="text-green-600 hover:text-green-500">{{t "activate"}}</button>
                            {{end}}
                        </form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="mt-8 bg-white shadow rounded-lg p-6 max-w-lg">
        <h2 class="text-lg font-medium text-gray-900">{{t "registerUser"}}</h2>
        <form method="POST" action="/admin/users" class="mt-4 space-y-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "email"}}</label>
                <input type="email" name="email" required class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "fullName"}}</label>
                <input type="text" name="full_name" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "password"}}</label>
                <input type="password" name="password" required class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">{{t "role"}}</label>
                <select name="role" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                    <option value="practitioner">{{t "practitioner"}}</option>
                    <option value="admin">{{t "admin"}}</option>
                </select>
            </div>
            <button type="submit" class="px-4 py-2 border border-transparent rounded-md text-sm text-white bg-indigo-600 hover:bg-indigo-700">{{t "save"}}</button>
        </form>
    </div>
</div>
{{end}}`,

	"settings": `{{define "content"}}
<div class="px-4 sm:px-0 max-w-lg">
    <h1 class="text-2xl font-bold text-gray-900">{{t "settings"}}</h1>

    <div class="mt-6 bg-white shadow rounded-lg p-6">
        <h2 class="text-lg font-medium text-gray-900">{{t "language"}}</h2>
        <form method="POST" action="/settings/language" class="mt-4 space-y-4">
            <select name="language" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <option value="en" {{if eq .Lang "en"}}selected{{end}}>{{t "english"}}</option>
                <option value="es" {{if eq .Lang "es"}}selected{{end}}>{{t "spanish"}}</option>
            </select>
            <button type="submit" class="px-4 py-2 border border-transparent rounded-md text-sm text-white bg-indigo-600 hover:bg-indigo-700">{{t "save"}}</button>
        </form>
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="px-4 sm:px-0 max-w-lg mx-auto text-center py-16">
    <h1 class="text-2xl font-bold text-gray-900">{{t "error"}}</h1>
    <p class="mt-4 text-sm text-gray-500">{{.Message}}</p>
    <a href="/" class="mt-6 inline-block text-sm text-indigo-600 hover:text-indigo-500">{{t "dashboard"}}</a>
</div>
{{end}}`,
}

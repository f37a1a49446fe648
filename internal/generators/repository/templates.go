package repository

// The three shapes repogen produces. Namespaces are assembled with sprig's
// list/join so a configured root like Acme\Shop nests correctly.

const plainTemplate = `<?php

namespace {{ list .Namespace "Repositories" | join "\\" }};

class {{ .Name }}Repository
{
    public function getAll()
    {
        // Implement getAll()
    }

    public function findById($id)
    {
        // Implement findById()
    }
}
`

const interfaceTemplate = `<?php

namespace {{ list .Namespace "Repositories" "Interface" | join "\\" }};

interface {{ .Name }}RepositoryInterface
{
    public function getAll();
    public function findById($id);
}
`

const typedTemplate = `<?php

namespace {{ list .Namespace "Repositories" (ucfirst .Kind) | join "\\" }};

use {{ list .Namespace "Repositories" "Interface" | join "\\" }}\{{ .Name }}RepositoryInterface;

class {{ .Name }}Repository{{ ucfirst .Kind }} implements {{ .Name }}RepositoryInterface
{
    public function getAll()
    {
        // Implement getAll()
    }

    public function findById($id)
    {
        // Implement findById()
    }
}
`

// templateData is what every template sees. Kind is empty for the plain
// repository and the interface.
type templateData struct {
	Name      string
	Kind      string
	Namespace string
}

func templateFor(t Target) (name, text string) {
	switch t {
	case TargetInterface:
		return "interface", interfaceTemplate
	case TargetTyped:
		return "typed", typedTemplate
	default:
		return "plain", plainTemplate
	}
}

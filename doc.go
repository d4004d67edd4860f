// Package reportfilter resolves the filter panel of a survey report page and composes the
// selections made in it into the query-expression grammar of the hosting report engine.
//
// The hosting platform owns everything stateful: survey and page configuration, the parameter
// store holding the end user's selections, the current page, user and data sources. The Resolver
// reaches that state only through the Host interface, which keeps this package free of any
// knowledge of how the host stores or renders things.
//
// Typical use is as follows:
//
//  1. Implement Host (or use the statichost package) for the current page render
//  2. Create a Resolver with NewResolver
//  3. Ask it which filter slots to show, or which to hide
//  4. Compose the panel expression and any specialised filters the page needs
//  5. Render the expression and hand it to the report engine
//
// # Filter Types
//
// A page shows either the global filter panel, shared by all pages of the survey, or its own
// page-specific panel, never both. Each panel is an ordered list of questions: the filters based
// on background variables come first, then the filters based on survey data. The boundary between
// the two is significant, because some pages (notably the response rate page) can only be
// filtered by background variables.
//
// # Parameters
//
// Every filter slot is backed by a host parameter whose name is a fixed prefix followed by the
// 1-based slot index:
//
//	p_ScriptedFilterPanelParameter1, p_ScriptedFilterPanelParameter2, ...
//	p_ScriptedPageFilterPanelParam1, p_ScriptedPageFilterPanelParam2, ...
//
// # Expressions
//
// Composers return an Expr, a small expression tree. A nil Expr means "no constraint". Render
// serialises a tree to the host grammar, for example
//
//	(IN(ds0:gender, "1") OR IN(ds0:gender, "2")) AND (IN(ds0:region, "north"))
//
// and renders a nil Expr as the empty string, which the host treats as "no filter".
package reportfilter

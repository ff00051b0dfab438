package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
	"github.com/andrescamacho/mediator-go/internal/domain/collab"
	"github.com/andrescamacho/mediator-go/test/helpers"
)

type collaborationContext struct {
	sink      *helpers.RecordingSink
	session   *demo.Session
	med       mediator.Mediator
	otherSink *helpers.RecordingSink
	detached  *collab.Component1
	err       error
}

func (cc *collaborationContext) reset() {
	cc.sink = nil
	cc.session = nil
	cc.med = nil
	cc.otherSink = nil
	cc.detached = nil
	cc.err = nil
}

func (cc *collaborationContext) aCollaborationGraph() error {
	cc.sink = helpers.NewRecordingSink()
	cc.session = demo.NewSession(cc.sink)

	cc.med = mediator.NewMediator()
	if err := mediator.RegisterHandler[*commands.TriggerActionCommand](cc.med, commands.NewTriggerActionHandler(cc.session)); err != nil {
		return err
	}
	return mediator.RegisterHandler[*commands.RunScriptCommand](cc.med, commands.NewRunScriptHandler(cc.med, cc.session))
}

func (cc *collaborationContext) aSecondIndependentGraph() error {
	cc.otherSink = helpers.NewRecordingSink()
	demo.NewSession(cc.otherSink)
	return nil
}

func (cc *collaborationContext) aDetachedComponent() error {
	cc.sink = helpers.NewRecordingSink()
	cc.detached = collab.NewComponent1(cc.sink)
	return nil
}

func (cc *collaborationContext) componentPerformsAction(component int, action string) error {
	if cc.session == nil {
		return fmt.Errorf("no collaboration graph constructed")
	}
	_, cc.err = cc.med.Send(context.Background(), &commands.TriggerActionCommand{
		Component: component,
		Action:    action,
	})
	return nil
}

func (cc *collaborationContext) detachedComponentPerformsAction(action string) error {
	if cc.detached == nil {
		return fmt.Errorf("no detached component constructed")
	}
	switch action {
	case "A":
		cc.err = cc.detached.DoA(context.Background())
	case "B":
		cc.err = cc.detached.DoB(context.Background())
	default:
		return fmt.Errorf("component 1 has no action %q", action)
	}
	return nil
}

func (cc *collaborationContext) clientRunsDemonstrationScript() error {
	if cc.session == nil {
		return fmt.Errorf("no collaboration graph constructed")
	}
	_, cc.err = cc.med.Send(context.Background(), &commands.RunScriptCommand{})
	return nil
}

func (cc *collaborationContext) theActionSucceeds() error {
	if cc.err != nil {
		return fmt.Errorf("expected success, got error: %v", cc.err)
	}
	return nil
}

func (cc *collaborationContext) theActionFailsWithError(message string) error {
	if cc.err == nil {
		return fmt.Errorf("expected an error, got none")
	}
	if cc.err.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, cc.err.Error())
	}
	return nil
}

func (cc *collaborationContext) theObservedEffectsAre(table *godog.Table) error {
	expected := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		expected = append(expected, row.Cells[0].Value)
	}

	actual := cc.sink.Lines()
	if len(actual) != len(expected) {
		return fmt.Errorf("expected %d effects, observed %d: %q", len(expected), len(actual), actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			return fmt.Errorf("effect %d: expected %q, observed %q", i+1, expected[i], actual[i])
		}
	}
	return nil
}

func (cc *collaborationContext) noEffectsAreObserved() error {
	if lines := cc.sink.Lines(); len(lines) != 0 {
		return fmt.Errorf("expected no effects, observed %q", lines)
	}
	return nil
}

func (cc *collaborationContext) secondGraphObservesNoEffects() error {
	if cc.otherSink == nil {
		return fmt.Errorf("no second graph constructed")
	}
	if lines := cc.otherSink.Lines(); len(lines) != 0 {
		return fmt.Errorf("expected no effects on the second graph, observed %q", lines)
	}
	return nil
}

// InitializeCollaborationScenario registers the collaboration step definitions
func InitializeCollaborationScenario(sc *godog.ScenarioContext) {
	cc := &collaborationContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a collaboration graph wired through the mediator$`, cc.aCollaborationGraph)
	sc.Step(`^a second independent collaboration graph$`, cc.aSecondIndependentGraph)
	sc.Step(`^a component that is not attached to any mediator$`, cc.aDetachedComponent)
	sc.Step(`^component (\d) performs action "([^"]*)"$`, cc.componentPerformsAction)
	sc.Step(`^the detached component performs action "([^"]*)"$`, cc.detachedComponentPerformsAction)
	sc.Step(`^the client runs the demonstration script$`, cc.clientRunsDemonstrationScript)
	sc.Step(`^the action succeeds$`, cc.theActionSucceeds)
	sc.Step(`^the action fails with error "([^"]*)"$`, cc.theActionFailsWithError)
	sc.Step(`^the observed effects are:$`, cc.theObservedEffectsAre)
	sc.Step(`^no effects are observed$`, cc.noEffectsAreObserved)
	sc.Step(`^the second graph observes no effects$`, cc.secondGraphObservesNoEffects)
}

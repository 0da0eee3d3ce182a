// Package c2w is a client for the Corp2World messaging service.
//
// A Client wraps a Transport (see integration/transport/rest for the HTTP
// implementation) and adds lazy start, idempotent stop and polling for user
// responses to dialog messages.
//
//	t, err := rest.New(rest.Config{Token: "token", Key: "key"})
//	if err != nil {
//		return err
//	}
//	client, err := c2w.New(t)
//	if err != nil {
//		return err
//	}
//	defer client.Stop(context.Background())
//
//	msg := message.New("Deploy approval", "Deploy build 512 to production?")
//	msg.AddDialogOption("yes")
//	msg.AddDialogOption("no")
//
//	res, err := client.Send(ctx, msg)
//	if err != nil {
//		return err
//	}
//	id, err := res.MessageID()
//	if err != nil {
//		return err
//	}
//	responses, err := client.WaitForResponse(ctx, id, 10*time.Minute)
//
// For fire-and-forget delivery that never blocks the caller, put a
// core/publisher.Publisher in front of the client: Client satisfies
// publisher.Transport.
//
// Default returns a process-wide client configured from the environment. Prefer
// explicit construction; Default exists for embedding environments that can
// only reach a singleton.
package c2w
